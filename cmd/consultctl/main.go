package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/urfave/cli/v3"

	"github.com/flarexio/consultant"

	natsT "github.com/flarexio/consultant/transport/nats"
)

func main() {
	cmd := &cli.Command{
		Name:  "consultctl",
		Usage: "Ask the consultant a question over NATS",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "nats",
				Usage:   "NATS server URL",
				Value:   nats.DefaultURL,
				Sources: cli.EnvVars("NATS_URL"),
			},
			&cli.StringFlag{
				Name:    "nats-creds",
				Usage:   "NATS user credentials file",
				Sources: cli.EnvVars("NATS_CREDS"),
			},
		},
		ArgsUsage: "<question>",
		Action:    run,
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err.Error())
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	question := strings.Join(cmd.Args().Slice(), " ")
	if question == "" {
		return errors.New("question is required")
	}

	opts := []nats.Option{
		nats.Name("Consultant Client"),
	}

	natsCreds := cmd.String("nats-creds")
	if natsCreds != "" {
		opts = append(opts, nats.UserCredentials(natsCreds))
	}

	nc, err := nats.Connect(cmd.String("nats"), opts...)
	if err != nil {
		return err
	}
	defer nc.Drain()

	endpoints := natsT.MakeEndpoints(nc, "consultant")

	var svc consultant.Service
	svc = consultant.ProxyMiddleware(endpoints)(svc)

	answer, err := svc.Ask(ctx, question)
	if err != nil {
		return err
	}

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Answer:", answer.Text)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("Status:", answer.Status)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("Source Text Used:")
	fmt.Println(answer.Source)
	fmt.Println(strings.Repeat("=", 50))

	return nil
}
