package main

import (
	"log"
	"os"
	"path"
	"time"

	"github.com/urfave/cli"

	"github.com/switcheo/switcheo-go/cmd"
)

const defaultConfigPath = "./configs/config.toml"

var configPath string

func main() {
	app := cli.NewApp()
	app.Name = path.Base(os.Args[0])
	app.Usage = "CLI for Switcheo NEO and Ethereum transaction signing"
	app.Compiled = time.Now()
	app.Authors = []cli.Author{
		{
			Name:  "Switcheo",
			Email: "engineering@switcheo.network",
		},
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config,c",
			Value:       defaultConfigPath,
			Destination: &configPath,
			Usage:       "full path to the configuration file",
		},
	}
	app.Before = cmd.ConfigureLogging
	app.Commands = []cli.Command{
		cmd.TransactionCommand,
		cmd.NeoCommand,
		cmd.EthereumCommand,
	}

	err := app.Run(os.Args)

	if err != nil {
		log.Fatal(err)
	}
}
