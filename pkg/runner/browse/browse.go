// Package browse launches the interactive feed view.
package browse

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/runner/feed"
	tuibrowse "github.com/EnmmmmOvO/airbnb-cli/pkg/tui/browse"
)

type Browse struct {
	Viewer string

	Client *client.Client
}

func (n *Browse) Do(ctx context.Context) error {
	table, err := feed.Load(ctx, n.Client, n.Viewer)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(tuibrowse.NewModel(table), tea.WithAltScreen()).Run()
	return err
}
