//go:build integration
// +build integration

package tests

import (
	"context"
	"log"
	"net"
	"net/rpc"
	"os"
	"os/signal"
	"reflect"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambda/messages"
)

// rpcFunction serves a lambda.Handler over the net/rpc protocol used by
// the native lambda runtime. The SDK server cannot be stopped so the
// tests run this one instead.
type rpcFunction struct {
	handler lambda.Handler
}

func (fn *rpcFunction) Ping(req *messages.PingRequest, response *messages.PingResponse) error {
	*response = messages.PingResponse{}
	return nil
}

func (fn *rpcFunction) Invoke(req *messages.InvokeRequest, response *messages.InvokeResponse) error {
	ctx, cancel := context.WithDeadline(
		context.Background(),
		time.Unix(req.Deadline.Seconds, req.Deadline.Nanos).UTC(),
	)
	defer cancel()
	payload, err := fn.handler.Invoke(ctx, req.Payload)
	if err != nil {
		errType := reflect.TypeOf(err)
		if errType.Kind() == reflect.Ptr {
			errType = errType.Elem()
		}
		response.Error = &messages.InvokeResponse_Error{Message: err.Error(), Type: errType.Name()}
		return nil
	}
	response.Payload = payload
	return nil
}

// StartHandler replaces lambda.StartHandler for the duration of a test. It
// listens on _LAMBDA_SERVER_PORT and returns once the process is signaled.
func StartHandler(handler lambda.Handler) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)
	lis, err := net.Listen("tcp", "localhost:"+os.Getenv("_LAMBDA_SERVER_PORT"))
	if err != nil {
		log.Fatal(err)
	}
	server := rpc.NewServer()
	if err := server.RegisterName("Function", &rpcFunction{handler: handler}); err != nil {
		log.Fatal("failed to register handler function")
	}
	go server.Accept(lis)
	<-c
	_ = lis.Close()
}
