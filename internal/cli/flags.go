package cli

import "flag"

// ServeFlags holds the CLI flags for the serve command.
type ServeFlags struct {
	Port    int
	Config  string
	Verbose bool
}

// ParseServeFlags parses command line flags for the serve command.
func ParseServeFlags() *ServeFlags {
	flags := &ServeFlags{}
	flag.IntVar(&flags.Port, "port", 0, "Port to listen on (0 = from config)")
	flag.StringVar(&flags.Config, "config", "config.yaml", "Path to config file")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}

// ShowFlags holds the CLI flags for the checksplit command.
type ShowFlags struct {
	DB     string
	Config string
	JSON   bool
}

// ParseShowFlags parses command line flags for the checksplit command.
func ParseShowFlags() *ShowFlags {
	flags := &ShowFlags{}
	flag.StringVar(&flags.DB, "db", "", "Path to snapshot database (overrides config)")
	flag.StringVar(&flags.Config, "config", "config.yaml", "Path to config file")
	flag.BoolVar(&flags.JSON, "json", false, "Print the raw result as JSON")
	flag.Parse()
	return flags
}
