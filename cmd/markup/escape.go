package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/escape"
	"github.com/vango-dev/markup/pkg/sink"
)

const defaultRegion = "us-east-1"

func escapeCmd(c *cli) *cobra.Command {
	var (
		bufferSize int
		attr       bool
		output     string
		region     string
	)

	cmd := &cobra.Command{
		Use:   "escape [file...]",
		Short: "HTML-escape files or standard input",
		Long: `Escape streams the named files (or standard input) through the HTML
escaper and writes the result to standard output, a file, or S3.

Reads from the escaper are made with a buffer of exactly --buffer bytes,
so the same input produces the same output for any buffer size.

Output locations:
  -                      standard output (default)
  path/to/file.html      written atomically
  s3://bucket/key        uploaded with Content-Type text/html
  s3:///key              uploaded to output.s3Bucket from markup.json`,
		Example: `  markup escape notes.txt
  echo '<b>"hi"</b>' | markup escape --attr
  markup escape --buffer 1 --output out.html notes.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromWorkingDir()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("buffer") {
				cfg.Escape.BufferSize = bufferSize
			}
			if flags.Changed("attr") {
				cfg.Escape.Attr = attr
			}
			if flags.Changed("region") {
				cfg.Output.Region = region
			}
			if cfg.Escape.BufferSize < 1 {
				return errors.New("E041").
					WithDetail(fmt.Sprintf("--buffer must be at least 1, got %d", cfg.Escape.BufferSize))
			}

			in, closeInputs, err := openInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			defer closeInputs()

			return runEscape(cmd.Context(), c, cfg, in, output)
		},
	}

	cmd.Flags().IntVarP(&bufferSize, "buffer", "b", config.DefaultBufferSize, "Read size used on the escaping stream")
	cmd.Flags().BoolVar(&attr, "attr", false, "Also escape tab, newline and carriage return for attribute values")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output location: -, a file path, or s3://bucket/key")
	cmd.Flags().StringVar(&region, "region", "", "AWS region for s3:// outputs")

	return cmd
}

func runEscape(ctx context.Context, c *cli, cfg *config.Config, in io.Reader, output string) error {
	counted := &countingReader{r: in}
	var r io.Reader
	if cfg.Escape.Attr {
		r = escape.NewAttrReader(counted)
	} else {
		r = escape.NewReader(counted)
	}
	src := &countingSource{src: sink.Copy(r, cfg.Escape.BufferSize)}

	if err := writeOutput(ctx, cfg, output, src, c.stdout, "E002"); err != nil {
		return err
	}

	c.logger.Debug("escaped",
		slog.String("output", output),
		slog.Int("buffer", cfg.Escape.BufferSize),
		slog.Bool("attr", cfg.Escape.Attr),
		slog.String("in", humanize.Bytes(uint64(counted.n))),
		slog.String("out", humanize.Bytes(uint64(src.n))),
	)
	return nil
}

// writeOutput sends src to output. code reports failures writing to stdout.
func writeOutput(ctx context.Context, cfg *config.Config, output string, src io.WriterTo, stdout io.Writer, code string) error {
	switch {
	case output == "" || output == "-":
		if _, err := src.WriteTo(stdout); err != nil {
			return errors.New(code).Wrap(err)
		}
		return nil

	case strings.HasPrefix(output, "s3://"):
		bucket, key, err := resolveS3(cfg, output)
		if err != nil {
			return err
		}
		region := cfg.Output.Region
		if region == "" {
			region = os.Getenv("AWS_REGION")
		}
		if region == "" {
			region = defaultRegion
		}
		err = sink.UploadS3(ctx, sink.NewS3Client(region), bucket, key, src)
		if err != nil {
			return errors.New("E003").
				WithDetail(fmt.Sprintf("Uploading s3://%s/%s failed.", bucket, key)).
				Wrap(err)
		}
		return nil

	default:
		if err := sink.WriteFile(output, src); err != nil {
			return errors.New("E004").
				WithDetail(fmt.Sprintf("Writing %s failed. Any existing file is unchanged.", output)).
				Wrap(err)
		}
		return nil
	}
}

// resolveS3 applies the configured default bucket and key prefix.
func resolveS3(cfg *config.Config, output string) (bucket, key string, err error) {
	bucket, key, ok := sink.ParseS3URL(output)
	if !ok && strings.HasPrefix(output, "s3:///") && cfg.Output.S3Bucket != "" {
		bucket, key = cfg.Output.S3Bucket, strings.TrimPrefix(output, "s3:///")
		ok = key != ""
	}
	if !ok {
		return "", "", errors.New("E042").
			WithDetail(fmt.Sprintf("%q is not of the form s3://bucket/key.", output))
	}
	if cfg.Output.S3Prefix != "" {
		key = path.Join(cfg.Output.S3Prefix, key)
	}
	return bucket, key, nil
}

// openInputs concatenates the named files, or returns stdin when there are
// none. "-" names stdin.
func openInputs(stdin io.Reader, args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return stdin, func() {}, nil
	}

	var (
		readers []io.Reader
		files   []*os.File
	)
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	for _, name := range args {
		if name == "-" {
			readers = append(readers, stdin)
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			closeAll()
			return nil, nil, errors.New("E002").
				WithDetail(fmt.Sprintf("Cannot open %s.", name)).
				Wrap(err)
		}
		files = append(files, f)
		readers = append(readers, f)
	}
	return io.MultiReader(readers...), closeAll, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

type countingSource struct {
	src io.WriterTo
	n   int64
}

func (c *countingSource) WriteTo(w io.Writer) (int64, error) {
	n, err := c.src.WriteTo(w)
	c.n += n
	return n, err
}
