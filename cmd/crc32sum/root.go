package main

import (
	"io"
	"os"

	"github.com/kezhuw/checksum"
	"github.com/spf13/cobra"
)

const (
	cliName        = "crc32sum"
	cliDescription = "Computes, verifies and seals IEEE CRC-32 checksums."
)

type globalFlags struct {
	verbose bool
	quiet   bool
}

func (g *globalFlags) logger() checksum.Logger {
	switch {
	case g.quiet:
		return checksum.WriterLogger(os.Stderr, checksum.ErrorLevel)
	case g.verbose:
		return checksum.WriterLogger(os.Stderr, checksum.DebugLevel)
	}
	return checksum.WriterLogger(os.Stderr, checksum.InfoLevel)
}

func newRootCommand() *cobra.Command {
	var g globalFlags
	cmd := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log debug information to stderr")
	cmd.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "log errors only")
	cmd.AddCommand(
		newSumCommand(&g),
		newCheckCommand(&g),
		newSealCommand(&g),
		newUnsealCommand(&g),
	)
	return cmd
}

// openInput opens name for reading, "-" meaning stdin.
func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return nopReadCloser{os.Stdin}, nil
	}
	return os.Open(name)
}

// createOutput creates name for writing, "-" meaning the command output.
func createOutput(cmd *cobra.Command, name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	return os.Create(name)
}

type nopReadCloser struct {
	io.Reader
}

func (nopReadCloser) Close() error { return nil }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
