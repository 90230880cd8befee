package main

import (
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-faster/intarray"
	"github.com/go-faster/intarray/internal/proto"
)

func (c *cli) addOneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-one <int32>",
		Short: "Print value plus one, wrapping on overflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInt32(args[0])
			if err != nil {
				return err
			}
			return c.printValue(cmd.OutOrStdout(), intarray.AddOne(v))
		},
	}
}

func (c *cli) headCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "head [int32...]",
		Short: "Print first element",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.descriptor(cmd, args)
			if err != nil {
				return err
			}
			if d.Length == 0 {
				return errors.Wrap(intarray.ErrEmpty, "head")
			}
			v := d.First()
			c.lg.Debug("Head", zap.Int32("length", d.Length), zap.Int32("value", v))
			return c.printValue(cmd.OutOrStdout(), v)
		},
	}
	c.inputFlags(cmd)
	return cmd
}

func (c *cli) tailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tail [int32...]",
		Short: "Print all elements except the first one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.times < 0 {
				return errors.Errorf("negative --times %d", c.times)
			}
			d, err := c.descriptor(cmd, args)
			if err != nil {
				return err
			}
			for i := 0; i < c.times; i++ {
				if d.Length == 0 {
					return errors.Wrapf(intarray.ErrEmpty, "tail %d", i+1)
				}
				next := d.Tail()
				d = &next
			}
			c.lg.Debug("Tail", zap.Int("times", c.times), zap.Int32("length", d.Length))
			return c.printView(cmd.OutOrStdout(), d.View())
		},
	}
	c.inputFlags(cmd)
	cmd.Flags().IntVar(&c.times, "times", 1, "Number of tail applications")
	return cmd
}

func (c *cli) packCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack [int32...]",
		Short: "Write elements as packed Int32",
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := c.values(args)
			if err != nil {
				return err
			}
			var buf proto.Buffer
			col.EncodeColumn(&buf)

			c.lg.Debug("Pack", zap.Int("rows", col.Rows()), zap.Int("bytes", len(buf.Buf)))

			if c.output == "" {
				if _, err := cmd.OutOrStdout().Write(buf.Buf); err != nil {
					return errors.Wrap(err, "write")
				}
				return nil
			}
			if err := os.WriteFile(c.output, buf.Buf, 0o600); err != nil {
				return errors.Wrap(err, "write")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&c.input, "in", "", "Read elements from packed Int32 file")
	cmd.Flags().StringVarP(&c.output, "out", "o", "", "Output file (default: stdout)")
	return cmd
}
