package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	xgxstatus "github.com/xgx-io/xgx-status"
	"github.com/xgx-io/xgx-status/grpcstatus"
)

// catalogue is the read-only view of one built-in domain.
type catalogue struct {
	name       string
	conditions func() []xgxstatus.ConditionEntry
	watch      func(name string) (xgxstatus.Kind, bool)
	errno      func(condition uint16) (syscall.Errno, bool)
}

func catalogues() map[string]catalogue {
	posix, win32 := xgxstatus.Posix(), xgxstatus.Win32()
	return map[string]catalogue{
		posix.Name(): {
			name:       posix.Name(),
			conditions: posix.Conditions,
			watch: func(name string) (xgxstatus.Kind, bool) {
				c, ok := posix.Lookup(name)
				if !ok {
					return xgxstatus.Kind{}, false
				}
				return posix.Watch(c), true
			},
			errno: func(condition uint16) (syscall.Errno, bool) {
				return xgxstatus.ErrnoOf(xgxstatus.PosixError(condition))
			},
		},
		win32.Name(): {
			name:       win32.Name(),
			conditions: win32.Conditions,
			watch: func(name string) (xgxstatus.Kind, bool) {
				c, ok := win32.Lookup(name)
				if !ok {
					return xgxstatus.Kind{}, false
				}
				return win32.Watch(c), true
			},
			errno: func(uint16) (syscall.Errno, bool) { return 0, false },
		},
	}
}

func findCatalogue(name string) (catalogue, error) {
	all := catalogues()
	c, ok := all[strings.ToLower(name)]
	if !ok {
		return catalogue{}, fmt.Errorf("unknown domain %q (want posix or win32)", name)
	}
	return c, nil
}

// conditionView is the JSON shape of one condition.
type conditionView struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Errno   int    `json:"errno,omitempty"`
}

func (a *app) conditionsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "conditions <domain>",
		Short: "List the conditions of a built-in domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := findCatalogue(args[0])
			if err != nil {
				return err
			}
			entries := c.conditions()
			views := make([]conditionView, len(entries))
			for i, e := range entries {
				views[i] = conditionView{ID: i, Name: e.Name, Message: e.Message}
				if n, ok := c.errno(uint16(i)); ok {
					views[i].Errno = int(n)
				}
			}
			a.log.Debug("listing conditions", "domain", c.name, "count", len(views))

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}
			for _, v := range views {
				fmt.Fprintf(a.out, "%4d  %-34s %s\n", v.ID, v.Name, v.Message)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func (a *app) lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <domain> <condition>",
		Short: "Describe one condition by name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := findCatalogue(args[0])
			if err != nil {
				return err
			}
			k, ok := c.watch(strings.ToUpper(args[1]))
			if !ok {
				return fmt.Errorf("no condition %q in domain %s", args[1], c.name)
			}
			a.log.Debug("found condition", "kind", k)

			fmt.Fprintf(a.out, "domain:    %s\n", c.name)
			fmt.Fprintf(a.out, "condition: %s\n", strings.ToUpper(args[1]))
			fmt.Fprintf(a.out, "code:      %s\n", k.Code())
			fmt.Fprintf(a.out, "message:   %s\n", k.Message())
			fmt.Fprintf(a.out, "grpc:      %s\n", grpcstatus.CodeOf(k))
			if n, ok := c.errno(k.Condition()); ok {
				fmt.Fprintf(a.out, "errno:     %d\n", int(n))
			}
			return nil
		},
	}
}

func (a *app) errnoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "errno <number>",
		Short: "Translate a platform errno into a POSIX status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid errno %q", args[0])
			}
			s, ok := xgxstatus.RaiseErrno(syscall.Errno(n))
			if !ok {
				return fmt.Errorf("errno %d has no POSIX condition on this platform", n)
			}
			a.log.Info("raised", "status", s)

			fmt.Fprintf(a.out, "%+v\n", s)
			fmt.Fprintf(a.out, "grpc: %s\n", grpcstatus.CodeOf(s))
			return nil
		},
	}
}
