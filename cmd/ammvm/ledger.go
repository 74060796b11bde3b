// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ava-labs/ammvm/actions"
	"github.com/ava-labs/ammvm/chain"
	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/config"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/utils"
	"github.com/ava-labs/ammvm/vm"

	alogging "github.com/ava-labs/ammvm/internal/logging"
)

var errMissingActor = errors.New("--actor is required")

// withController opens the ledger configured by [cmd]'s flags, runs [f]
// and closes the ledger again.
func withController(cmd *cobra.Command, f func(context.Context, *vm.Controller) error) error {
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := alogging.New(consts.Name, cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Stop()

	c, err := vm.New(cfg, log, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	ferr := f(cmd.Context(), c)
	if err := c.Close(); err != nil && ferr == nil {
		return err
	}
	return ferr
}

// execute runs [action] as the --actor account at the current time and
// returns its outputs.
func execute(cmd *cobra.Command, action chain.Action) ([][]byte, error) {
	actor, err := actorFlag(cmd)
	if err != nil {
		return nil, err
	}
	var outputs [][]byte
	err = withController(cmd, func(ctx context.Context, c *vm.Controller) error {
		result, err := c.Execute(ctx, action, actor, time.Now().UnixMilli())
		if err != nil {
			return err
		}
		utils.Outf("{{green}}action:{{/}} %s {{green}}changes:{{/}} %d\n", result.ActionID, result.Changes)
		outputs = result.Outputs
		return nil
	})
	return outputs, err
}

func actorFlag(cmd *cobra.Command) (codec.Address, error) {
	s, err := cmd.Flags().GetString("actor")
	if err != nil {
		return codec.EmptyAddress, err
	}
	if s == "" {
		return codec.EmptyAddress, errMissingActor
	}
	return codec.StringToAddress(s)
}

func addressFlag(cmd *cobra.Command, name string) (codec.Address, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return codec.EmptyAddress, err
	}
	addr, err := codec.StringToAddress(s)
	if err != nil {
		return codec.EmptyAddress, fmt.Errorf("--%s: %w", name, err)
	}
	return addr, nil
}

// optionalAddressFlag is [addressFlag] for flags that may be left unset.
func optionalAddressFlag(cmd *cobra.Command, name string) (codec.Address, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil || s == "" {
		return codec.EmptyAddress, err
	}
	return addressFlag(cmd, name)
}

// expirationFlag converts --ttl (seconds) into a unix millisecond deadline.
// A ttl of 0 never expires.
func expirationFlag(cmd *cobra.Command) (int64, error) {
	ttl, err := cmd.Flags().GetInt64("ttl")
	if err != nil {
		return 0, err
	}
	return utils.Deadline(time.Now().UnixMilli(), ttl), nil
}

func printAmounts(outputs [][]byte, labels ...string) {
	for i, label := range labels {
		if i >= len(outputs) {
			return
		}
		amount, ok := actions.ParseAmount(outputs[i])
		if !ok {
			continue
		}
		utils.Outf("{{yellow}}%s:{{/}} %d\n", label, amount)
	}
}

func printAddresses(outputs [][]byte, labels ...string) error {
	for i, label := range labels {
		if i >= len(outputs) {
			return nil
		}
		addr, err := codec.ToAddress(outputs[i])
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}%s:{{/}} %s\n", label, addr)
	}
	return nil
}
