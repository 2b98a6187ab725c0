package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kezhuw/checksum"
	"github.com/spf13/cobra"
)

type sealFlags struct {
	compression string
	blockSize   int
	chunkSize   int
	paranoid    bool
}

func (f *sealFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.blockSize, "block-size", 0, "record block size in bytes, must match between seal and unseal (default 32KiB)")
	cmd.Flags().IntVar(&f.chunkSize, "chunk-size", 0, "input bytes per sealed block (default 64KiB)")
}

func (f *sealFlags) options(g *globalFlags) (*checksum.Options, error) {
	opts := &checksum.Options{
		BlockSize:      f.blockSize,
		ChunkSize:      f.chunkSize,
		ParanoidChecks: f.paranoid,
		Logger:         g.logger(),
	}
	if f.compression != "" {
		compression, err := checksum.ParseCompression(f.compression)
		if err != nil {
			return nil, err
		}
		opts.Compression = compression
	}
	return opts, nil
}

func runStream(cmd *cobra.Command, g *globalFlags, f *sealFlags, verb string, args []string, fn func(cmd *cobra.Command, in, out string, opts *checksum.Options) (int64, error)) error {
	opts, err := f.options(g)
	if err != nil {
		return err
	}
	start := time.Now()
	n, err := fn(cmd, args[0], args[1], opts)
	if err != nil {
		return err
	}
	opts.Logger.Infof("%s %s from %s to %s in %s", verb, humanize.IBytes(uint64(n)), args[0], args[1], time.Since(start))
	return nil
}

func newSealCommand(g *globalFlags) *cobra.Command {
	var f sealFlags
	cmd := &cobra.Command{
		Use:   "seal <input> <output>",
		Short: "Writes input as a compressed, checksummed container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(cmd, g, &f, "sealed", args, sealFile)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.compression, "compression", "snappy", "block compression: none or snappy")
	return cmd
}

func newUnsealCommand(g *globalFlags) *cobra.Command {
	var f sealFlags
	cmd := &cobra.Command{
		Use:   "unseal <input> <output>",
		Short: "Verifies a sealed container and writes its content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(cmd, g, &f, "unsealed", args, unsealFile)
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&f.paranoid, "paranoid", false, "also verify per-block checksums")
	return cmd
}

func sealFile(cmd *cobra.Command, in, out string, opts *checksum.Options) (int64, error) {
	r, err := openInput(in)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	w, err := createOutput(cmd, out)
	if err != nil {
		return 0, err
	}
	n, err := checksum.Seal(w, r, opts)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return n, err
}

func unsealFile(cmd *cobra.Command, in, out string, opts *checksum.Options) (int64, error) {
	r, err := openInput(in)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	w, err := createOutput(cmd, out)
	if err != nil {
		return 0, err
	}
	n, err := checksum.Unseal(w, r, opts)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return n, err
}
