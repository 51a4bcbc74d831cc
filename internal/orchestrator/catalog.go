package orchestrator

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Folder-scoped collections that take no arguments beyond the folder.

// ListAssets returns the assets of a folder.
func (c *Client) ListAssets(ctx context.Context, folderID string, opts ...CallOption) ([]Asset, error) {
	if err := checkArgs(validation.Errors{"folder": validation.Validate(folderID, folderRules...)}); err != nil {
		return nil, err
	}
	return list[Asset](ctx, c, "ListAssets", "/odata/Assets", folderID, "", opts)
}

// ListCalendars returns the calendars of a folder.
func (c *Client) ListCalendars(ctx context.Context, folderID string, opts ...CallOption) ([]Calendar, error) {
	if err := checkArgs(validation.Errors{"folder": validation.Validate(folderID, folderRules...)}); err != nil {
		return nil, err
	}
	return list[Calendar](ctx, c, "ListCalendars", "/odata/Calendars", folderID, "", opts)
}

// ListEnvironments returns the robot environments of a folder.
func (c *Client) ListEnvironments(ctx context.Context, folderID string, opts ...CallOption) ([]Environment, error) {
	if err := checkArgs(validation.Errors{"folder": validation.Validate(folderID, folderRules...)}); err != nil {
		return nil, err
	}
	return list[Environment](ctx, c, "ListEnvironments", "/odata/Environments", folderID, "", opts)
}

// ListMachines returns the machines of a folder.
func (c *Client) ListMachines(ctx context.Context, folderID string, opts ...CallOption) ([]Machine, error) {
	if err := checkArgs(validation.Errors{"folder": validation.Validate(folderID, folderRules...)}); err != nil {
		return nil, err
	}
	return list[Machine](ctx, c, "ListMachines", "/odata/Machines", folderID, "", opts)
}

// ListProcesses returns the published processes visible from a folder.
func (c *Client) ListProcesses(ctx context.Context, folderID string, opts ...CallOption) ([]Process, error) {
	if err := checkArgs(validation.Errors{"folder": validation.Validate(folderID, folderRules...)}); err != nil {
		return nil, err
	}
	return list[Process](ctx, c, "ListProcesses", "/odata/Processes", folderID, "", opts)
}

// ListReleases returns the process releases of a folder.
func (c *Client) ListReleases(ctx context.Context, folderID string, opts ...CallOption) ([]Release, error) {
	if err := checkArgs(validation.Errors{"folder": validation.Validate(folderID, folderRules...)}); err != nil {
		return nil, err
	}
	return list[Release](ctx, c, "ListReleases", "/odata/Releases", folderID, "", opts)
}

// ListSchedules returns the process schedules of a folder.
func (c *Client) ListSchedules(ctx context.Context, folderID string, opts ...CallOption) ([]Schedule, error) {
	if err := checkArgs(validation.Errors{"folder": validation.Validate(folderID, folderRules...)}); err != nil {
		return nil, err
	}
	return list[Schedule](ctx, c, "ListSchedules", "/odata/ProcessSchedules", folderID, "", opts)
}

// ListRoles returns the tenant roles. Roles are not folder scoped, so no
// organization unit header is sent.
func (c *Client) ListRoles(ctx context.Context, opts ...CallOption) ([]Role, error) {
	return list[Role](ctx, c, "ListRoles", "/odata/Roles", "", "", opts)
}
