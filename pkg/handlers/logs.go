package handlers

type itemNotFound struct {
	ID      string `logevent:"id"`
	Message string `logevent:"message,default=item-not-found"`
}

type storeFailure struct {
	Reason  string `logevent:"reason"`
	Message string `logevent:"message,default=item-store-failure"`
}

type itemWritten struct {
	ID      string `logevent:"id"`
	Created bool   `logevent:"created"`
	Message string `logevent:"message,default=item-written"`
}

type itemDeleted struct {
	ID      string `logevent:"id"`
	Message string `logevent:"message,default=item-deleted"`
}
