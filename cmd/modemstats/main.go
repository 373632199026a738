package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/common/log"
	"github.com/prometheus/common/version"
	"gopkg.in/alecthomas/kingpin.v2"

	"modemstats/internal/config"
	"modemstats/internal/emit"
	"modemstats/internal/modem"
	"modemstats/internal/poll"
	"modemstats/internal/session"
	"modemstats/internal/stats"
)

const appName = "modemstats"

func main() {
	var (
		listModems = kingpin.Flag("list-modems", "List supported modems.").Short('l').Bool()
		configFile = kingpin.Flag("config", "Config file for modem authentication.").Short('c').String()
		statusURL  = kingpin.Flag("url", "Override URL to the modem status page.").String()
		format     = kingpin.Flag("format", "Output format.").Default("influxdb").Enum("influxdb", "json")
		timeout    = kingpin.Flag("client.timeout", "Timeout for HTTP requests to the modem.").Default("10s").Duration()
		modemName  = kingpin.Arg("modem", "Modem to collect statistics from.").String()
	)

	log.AddFlags(kingpin.CommandLine)
	kingpin.Version(version.Print(appName))
	kingpin.HelpFlag.Short('h')
	kingpin.Parse()

	if *listModems {
		fmt.Println("Supported modems:")
		for _, m := range modem.List() {
			fmt.Println(" ", m.Name())
		}
		return
	}

	var cfg *config.File
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatalln(err)
		}
	}

	name := *modemName
	if name == "" && cfg != nil {
		name = cfg.Modem
	}
	if name == "" {
		log.Fatalln("Must use either --list-modems or give a modem")
	}
	m, ok := modem.Find(name)
	if !ok {
		log.Fatalf("Could not find modem %q, try --list-modems", name)
	}

	opts := session.Options{URL: *statusURL, Timeout: *timeout}
	if cfg != nil {
		if mc, ok := cfg.Vendor(m.Name()); ok {
			if mc.Username != "" || mc.Password != "" {
				opts.Credentials = &stats.Credentials{Username: mc.Username, Password: mc.Password}
			}
			if opts.URL == "" {
				opts.URL = mc.URL
			}
			opts.AuthURL = mc.AuthURL
		}
	}

	sess, err := session.New(m, opts)
	if err != nil {
		log.Fatalln(err)
	}

	result, err := poll.New(sess, m).Capture(context.Background())
	if err != nil {
		log.Fatalln(err)
	}

	switch *format {
	case "json":
		err = emit.JSON(os.Stdout, result)
	default:
		err = emit.InfluxDB(os.Stdout, result)
	}
	if err != nil {
		log.Fatalln(err)
	}
}
