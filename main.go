// Command readline runs an echo REPL demonstrating the line editor.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/readline/config"
	"github.com/lixenwraith/readline/editor"
)

const welcome = `welcome to the echo repl
- press arrow UP/DOWN to navigate in history
- type 'exit' or press Ctrl+C to exit
`

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfgPath   string
		prompt    string
		bufSize   int
		traceFile string
	)

	cmd := &cobra.Command{
		Use:           "readline",
		Short:         "Echo REPL built on the interactive line editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(os.Stderr)

			cfg, err := config.Load(cfgPath)
			if err != nil {
				logger.Error("config load failed", "err", err)
				return err
			}

			// Flags win over file values
			if cmd.Flags().Changed("prompt") {
				cfg.Prompt = prompt
			}
			if cmd.Flags().Changed("buffer-size") {
				cfg.BufferSize = bufSize
			}
			if cmd.Flags().Changed("trace") {
				cfg.TraceFile = traceFile
			}
			if err := cfg.Validate(); err != nil {
				logger.Error("invalid options", "err", err)
				return err
			}

			if err := run(cfg, logger); err != nil {
				// The session restores the terminal before returning;
				// reporting and exiting is all that is left to do
				logger.Error("fatal terminal failure", "err", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to TOML options file")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "> ", "prompt string")
	cmd.Flags().IntVarP(&bufSize, "buffer-size", "b", 1024, "line buffer size in bytes")
	cmd.Flags().StringVar(&traceFile, "trace", "", "write key/lifecycle trace logs to this file")

	return cmd
}

func run(cfg config.Config, logger *log.Logger) error {
	opts := []editor.Option{
		editor.WithPollTimeout(cfg.PollTimeout()),
	}

	if cfg.TraceFile != "" {
		f, err := os.OpenFile(cfg.TraceFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open trace file: %w", err)
		}
		defer f.Close()
		trace := log.New(f)
		trace.SetLevel(log.DebugLevel)
		opts = append(opts, editor.WithLogger(trace))
	}

	sess := editor.New(opts...)
	defer sess.Close()

	fmt.Printf("%s\n", welcome)

	buf := make([]byte, cfg.BufferSize)
	for {
		n, res, err := sess.ReadLine(buf, cfg.Prompt)
		if err != nil {
			return err
		}

		switch res {
		case editor.ResultInterrupted:
			fmt.Println("\npressed Ctrl+C (SIGINT), exiting...")
			return nil
		case editor.ResultEOF:
			fmt.Println("\npressed Ctrl+D (EOF), exiting...")
			return nil
		}

		input := string(buf[:n])
		if input == "exit" {
			return nil
		}
		fmt.Printf("you said: %s\n", input)
	}
}
