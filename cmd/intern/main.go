// Command intern interns the lines, words or runes of its inputs and reports
// how many were distinct.
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.
	New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
	Level(zerolog.InfoLevel).
	With().
	Timestamp().
	Logger()

func main() {
	var (
		configFile string
		flags      Config
	)
	flag.StringVar(&configFile, "config", "", "config file, e.g. "+defaultConfigFileName)
	flag.StringVar(&flags.Strategy, "strategy", "", "backward index: hash or btree.")
	flag.StringVar(&flags.Split, "split", "", "record split mode: line, word or rune.")
	flag.IntVar(&flags.Capacity, "capacity", 0, "entries reserved up front.")
	flag.Uint64Var(&flags.MaxTokens, "max-tokens", 0, "maximum distinct records.")
	flag.BoolVar(&flags.Dump, "dump", false, "print every distinct record with its token.")
	flag.BoolVar(&flags.Sorted, "sorted", false, "dump in value order (btree only).")
	flag.Parse()

	config, err := loadConfig(configFile)
	if err != nil {
		logger.Fatal().Err(err).Str("config", configFile).Msg("failed to load config")
	}
	flag.Visit(func(f *flag.Flag) {
		overrideConfig(config, &flags, f.Name)
	})

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid log level")
	}
	logger = logger.Level(level)

	if err := run(config, flag.Args(), os.Stdin, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("intern failed")
	}
}

func overrideConfig(config, flags *Config, name string) {
	switch name {
	case "strategy":
		config.Strategy = flags.Strategy
	case "split":
		config.Split = flags.Split
	case "capacity":
		config.Capacity = flags.Capacity
	case "max-tokens":
		config.MaxTokens = flags.MaxTokens
	case "dump":
		config.Dump = flags.Dump
	case "sorted":
		config.Sorted = flags.Sorted
	}
}

// run feeds the named files, or stdin when there are none, to one session.
func run(config *Config, files []string, stdin io.Reader, stdout io.Writer) error {
	s, err := newSession(config)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		if err := s.feed(stdin); err != nil {
			return err
		}
	}
	for _, name := range files {
		logger.Debug().Str("file", name).Msg("reading")
		if err := feedFile(s, name); err != nil {
			return err
		}
	}

	if config.Dump {
		if err := s.dump(stdout, config.Sorted); err != nil {
			return err
		}
	}
	s.report(stdout)
	return nil
}

func feedFile(s *session, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.feed(f)
}
