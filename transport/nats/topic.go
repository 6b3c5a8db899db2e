package nats

import (
	"github.com/nats-io/nats.go/micro"

	"github.com/flarexio/consultant"
)

func AddEndpoints(group micro.Group, endpoints consultant.EndpointSet) {
	group.AddEndpoint("ask", AskHandler(endpoints.Ask))
}
