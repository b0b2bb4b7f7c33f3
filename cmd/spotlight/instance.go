package main

import (
	"fmt"

	"github.com/fwojciec/spotlight"
)

// Run executes the instance add command.
func (c *InstanceAddCmd) Run(deps *Dependencies) error {
	instance := &spotlight.Instance{
		Name:    c.Name,
		Version: c.Version,
		ModLoader: spotlight.ModLoader{
			LoaderType: spotlight.ModLoaderType(c.Loader),
			Version:    c.LoaderVersion,
		},
		IconSrc: c.Icon,
		Starred: c.Starred,
	}
	if err := deps.Instances.CreateInstance(deps.Ctx, instance); err != nil {
		return printError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Added instance %q (%s)\n", instance.Name, instance.ID)
	return nil
}

// Run executes the instance list command.
func (c *InstanceListCmd) Run(deps *Dependencies) error {
	instances, err := deps.Instances.FindInstances(deps.Ctx, spotlight.InstanceFilter{})
	if err != nil {
		return printError(deps, err)
	}

	if len(instances) == 0 {
		fmt.Fprintln(deps.Stdout, "No instances found. Use 'spotlight instance add' to create one.")
		return nil
	}

	for _, i := range instances {
		star := " "
		if i.Starred {
			star = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s  %s\n", star, i.ID, i.Name, i.Description())
	}
	return nil
}

// Run executes the instance delete command. Routing history under the
// instance's detail pages is removed with it.
func (c *InstanceDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Instances.DeleteInstance(deps.Ctx, c.ID); err != nil {
		if spotlight.ErrorCode(err) == spotlight.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: instance %q not found. Use 'spotlight instance list' to see available instances.\n", c.ID)
			return err
		}
		return printError(deps, err)
	}

	if err := deps.History.RemoveHistory(deps.Ctx, instanceRoute(c.ID)); err != nil {
		return printError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted instance %s\n", c.ID)
	return nil
}

func instanceRoute(id string) string {
	r := spotlight.InstanceResult{Instance: &spotlight.Instance{ID: id}}
	return string(r.Target().(spotlight.Route))
}
