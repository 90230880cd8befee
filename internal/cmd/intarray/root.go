package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/go-faster/intarray"
	"github.com/go-faster/intarray/internal/proto"
	"github.com/go-faster/intarray/internal/version"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// cli holds flags of single invocation.
type cli struct {
	lg *zap.Logger

	format string
	debug  bool
	input  string
	length int
	times  int
	output string
}

func newRoot(lg *zap.Logger) *cobra.Command {
	c := &cli{lg: lg}
	root := &cobra.Command{
		Use:               "intarray",
		Short:             "Run intarray operations",
		PersistentPreRunE: c.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           version.Get().String(),
	}
	root.PersistentFlags().StringVar(&c.format, "format", formatText, "Output format: text, json or yaml")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "Enable debug logging")
	root.AddCommand(
		c.addOneCmd(),
		c.headCmd(),
		c.tailCmd(),
		c.packCmd(),
	)
	return root
}

func (c *cli) setup(*cobra.Command, []string) error {
	switch c.format {
	case formatText, formatJSON, formatYAML:
	default:
		return errors.Errorf("unknown format %q", c.format)
	}
	if !c.debug {
		c.lg = c.lg.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}
	return nil
}

func (c *cli) inputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.input, "in", "", "Read elements from packed Int32 file")
	cmd.Flags().IntVar(&c.length, "length", 0, "Declared descriptor length (default: all elements)")
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Wrap(err, "parse")
	}
	return int32(v), nil
}

// values returns elements from --in file or from args.
func (c *cli) values(args []string) (proto.ColInt32, error) {
	var col proto.ColInt32
	source := "args"
	if c.input != "" {
		if len(args) > 0 {
			return nil, errors.New("both --in and arguments set")
		}
		f, err := os.Open(c.input)
		if err != nil {
			return nil, errors.Wrap(err, "open")
		}
		defer func() { _ = f.Close() }()
		if err := col.DecodeAll(proto.NewReader(f)); err != nil {
			return nil, errors.Wrapf(err, "decode %s", c.input)
		}
		source = c.input
	} else {
		for i, arg := range args {
			v, err := parseInt32(arg)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			col.Append(v)
		}
	}
	if ce := c.lg.Check(zap.DebugLevel, "Input"); ce != nil {
		ce.Write(
			zap.String("source", source),
			zap.Int("rows", col.Rows()),
		)
	}
	return col, nil
}

// descriptor returns descriptor over copy of elements.
func (c *cli) descriptor(cmd *cobra.Command, args []string) (*intarray.Descriptor, error) {
	col, err := c.values(args)
	if err != nil {
		return nil, err
	}

	// Spare element keeps Members of fully consumed tail inside allocation.
	backing := make([]int32, col.Rows()+1)
	copy(backing, col)
	d := intarray.Describe(intarray.Of(backing[:col.Rows()]))

	if cmd.Flags().Changed("length") {
		if c.length > col.Rows() {
			return nil, errors.Errorf("length %d exceeds %d elements", c.length, col.Rows())
		}
		d.Length = int32(c.length)
	}
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate")
	}
	return &d, nil
}

type valueOutput struct {
	Value int32 `json:"value" yaml:"value"`
}

type viewOutput struct {
	Length  int     `json:"length" yaml:"length"`
	Members []int32 `json:"members" yaml:"members"`
}

func (c *cli) print(w io.Writer, v interface{}, text string) error {
	switch c.format {
	case formatJSON:
		return json.NewEncoder(w).Encode(v)
	case formatYAML:
		e := yaml.NewEncoder(w)
		if err := e.Encode(v); err != nil {
			return errors.Wrap(err, "encode")
		}
		return e.Close()
	default:
		_, err := fmt.Fprintln(w, text)
		return err
	}
}

func (c *cli) printValue(w io.Writer, v int32) error {
	return c.print(w, valueOutput{Value: v}, strconv.FormatInt(int64(v), 10))
}

func (c *cli) printView(w io.Writer, v intarray.View) error {
	members := append([]int32{}, v.Slice()...)
	text := make([]string, len(members))
	for i, m := range members {
		text[i] = strconv.FormatInt(int64(m), 10)
	}
	return c.print(w, viewOutput{
		Length:  len(members),
		Members: members,
	}, strings.Join(text, " "))
}
