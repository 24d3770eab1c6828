package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/kemureco/internal/errmsg"
	"github.com/llehouerou/kemureco/internal/mixes"
)

var mixesCmd = &cobra.Command{
	Use:   "mixes",
	Short: "List saved mixes",
	Args:  cobra.NoArgs,
	RunE:  runMixes,
}

func runMixes(cmd *cobra.Command, _ []string) error {
	_, stateMgr, err := setup()
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	list, err := mixes.New(stateMgr.DB()).List()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpMixLoad, err))
	}

	printMixes(cmd.OutOrStdout(), list, time.Now())
	return nil
}

func printMixes(w io.Writer, list []mixes.Mix, now time.Time) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No mixes yet.")
		return
	}
	for _, m := range list {
		fmt.Fprintf(w, "%s (%s)\n", m.Title, humanize.RelTime(m.CreatedAt, now, "ago", "from now"))
		if m.Description != "" {
			fmt.Fprintf(w, "  %s\n", m.Description)
		}
		for _, c := range m.Components {
			fmt.Fprintf(w, "  %3d%%  %s\n", c.Ratio, c.Label())
		}
	}
}
