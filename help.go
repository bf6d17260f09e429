package todolist

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/asecurityteam/todolist/pkg/store"
)

// HelpStatic generates the help output for static builds.
func HelpStatic() string {
	rtGroup, _ := settings.GroupFromComponent(&runhttp.Component{})
	storeGroup, _ := settings.GroupFromComponent(store.NewComponent())
	lambdaGroup, _ := settings.GroupFromComponent(&LambdaComponent{})
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   "TODOLIST",
		GroupValues: []settings.Group{rtGroup, storeGroup, lambdaGroup},
	}})
}
