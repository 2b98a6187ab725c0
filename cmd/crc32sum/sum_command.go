package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kezhuw/checksum"
	"github.com/spf13/cobra"
)

const sumSeparator = "  "

func newSumCommand(g *globalFlags) *cobra.Command {
	var human bool
	cmd := &cobra.Command{
		Use:   "sum [file...]",
		Short: "Prints the CRC-32 checksum and size of each file",
		Long: `Prints one line per file: the checksum as 8 hex digits, the size and the
file name, separated by two spaces. With no file, or when file is -, reads
standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			return sumFiles(cmd, g.logger(), args, human)
		},
	}
	cmd.Flags().BoolVarP(&human, "human", "H", false, "print sizes in human readable units, e.g. 1.2 MiB")
	return cmd
}

func formatSize(n int64, human bool) string {
	if human {
		return humanize.IBytes(uint64(n))
	}
	return strconv.FormatInt(n, 10)
}

func sumFiles(cmd *cobra.Command, logger checksum.Logger, names []string, human bool) error {
	var total int64
	for _, name := range names {
		sum, n, err := sumFile(cmd, name)
		if err != nil {
			return err
		}
		total += n
		fmt.Fprintf(cmd.OutOrStdout(), "%08x%s%s%s%s\n", sum, sumSeparator, formatSize(n, human), sumSeparator, name)
	}
	logger.Infof("summed %d files, %s", len(names), humanize.IBytes(uint64(total)))
	return nil
}

func sumFile(cmd *cobra.Command, name string) (uint32, int64, error) {
	f, err := openInput(name)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	return checksum.SumReader(f)
}

type sumLine struct {
	sum  uint32
	size int64 // -1 if the size was printed in rounded human units
	name string
}

func parseSumLine(line string) (sumLine, error) {
	fields := strings.SplitN(line, sumSeparator, 3)
	if len(fields) != 3 || fields[2] == "" {
		return sumLine{}, fmt.Errorf("malformed line %q", line)
	}
	sum, err := strconv.ParseUint(fields[0], 16, 32)
	if err != nil {
		return sumLine{}, fmt.Errorf("malformed checksum in line %q", line)
	}
	size, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		if _, err := humanize.ParseBytes(fields[1]); err != nil {
			return sumLine{}, fmt.Errorf("malformed size in line %q", line)
		}
		size = -1
	} else if size < 0 {
		return sumLine{}, fmt.Errorf("malformed size in line %q", line)
	}
	return sumLine{sum: uint32(sum), size: size, name: fields[2]}, nil
}

func newCheckCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <listfile>",
		Short: "Verifies files against lines printed by sum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return checkFiles(cmd, g.logger(), f)
		},
	}
}

func checkFiles(cmd *cobra.Command, logger checksum.Logger, list io.Reader) error {
	var checked, failed int
	scanner := bufio.NewScanner(list)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		want, err := parseSumLine(line)
		if err != nil {
			return err
		}
		checked++
		sum, n, err := sumFile(cmd, want.name)
		switch {
		case err != nil:
			logger.Warnf("%s: %v", want.name, err)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED open or read\n", want.name)
			failed++
		case sum != want.sum || (want.size >= 0 && n != want.size):
			logger.Debugf("%s: got %08x %d, want %08x %d", want.name, sum, n, want.sum, want.size)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED\n", want.name)
			failed++
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", want.name)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d files failed verification", failed, checked)
	}
	return nil
}
