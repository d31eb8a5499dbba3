package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/aprsdigi/aprsroute"
)

func parseLogLevel(s string) (log.Level, error) {
	return log.ParseLevel(s)
}

func main() {
	var configFileName = pflag.StringP("config", "c", "", "Router configuration file (YAML). Required.")
	var packetString = pflag.StringP("packet", "p", "", "Packet to route, e.g. \"N0CALL>APRS,WIDE2-2:data\". Required.")
	var showDiagnostics = pflag.BoolP("diagnostics", "d", false, "Print the diagnostic action trace for this packet, overriding the config file's diagnostics setting.")
	var logLevel = pflag.StringP("log-level", "l", "info", "Log level: debug, info, warn, error.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - evaluate one packet against a digipeater routing configuration.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nUsage: aprsroute -c config.yaml -p PACKET\n\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *configFileName == "" || *packetString == "" {
		pflag.Usage()
		os.Exit(1)
	}

	if level, err := parseLogLevel(*logLevel); err == nil {
		aprsroute.Logger.SetLevel(level)
	}

	settings, err := aprsroute.LoadConfig(*configFileName)
	if err != nil {
		aprsroute.Logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *showDiagnostics {
		settings.Diagnostics = true
	}

	packet, err := aprsroute.ParsePacket(*packetString)
	if err != nil {
		aprsroute.Logger.Error("failed to parse packet", "error", err)
		os.Exit(1)
	}

	result := aprsroute.Route(packet, settings)
	aprsroute.LogResult(packet, result)

	fmt.Printf("state: %s\n", result.State)
	fmt.Printf("packet: %s\n", result.Packet.String())

	if settings.Diagnostics && len(result.Actions) > 0 {
		fmt.Println("actions:")
		for _, a := range result.Actions {
			fmt.Printf("  [%d,%d) %s index=%d %q\n", a.Start, a.End, a.Type, a.Index, a.Address)
		}
	}

	if result.State != aprsroute.Routed {
		os.Exit(2)
	}
}
