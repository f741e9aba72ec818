package cli

import "fmt"

type InitCmd struct {
	Force bool `help:"Delete any existing data before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if err := ctx.Gateway.Clear(); err != nil {
			return err
		}
	}
	if err := ctx.Gateway.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized learntrack storage at: %s\n", ctx.Gateway.Path())
	return nil
}
