package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaaas/vaswm/internal/config"
)

func TestKind_NextCyclesBothDirections(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(TwoColumns, OneColumn.Next(false))
	assert.Equal(ThreeColumns, TwoColumns.Next(false))
	assert.Equal(FourColumns, ThreeColumns.Next(false))
	assert.Equal(OneColumn, FourColumns.Next(false))

	assert.Equal(FourColumns, OneColumn.Next(true))
	assert.Equal(OneColumn, TwoColumns.Next(true))
}

func TestLayout_OneColumnAlwaysFullscreensCurrent(t *testing.T) {
	assert := assert.New(t)

	conn := newFakeConn()
	cfg := config.Default()
	cfg.BorderPixel = 4
	mon := NewMonitor(cfg, 1200, 800)
	ws := mon.Workspaces()[0]

	first, err := addClient(conn, mon, ws, 1)
	assert.NoError(err)
	second, err := addClient(conn, mon, ws, 2)
	assert.NoError(err)

	assert.NoError(ws.Focus(conn, second))

	visible, hidden := ws.Layout.Arrange()
	assert.Len(visible, 1)
	assert.Equal(ws.IndexOf(second), visible[0].Index)
	assert.Equal(Geometry{X: -4, Y: -4, W: 1200, H: 800}, visible[0].Geometry)
	assert.Equal([]int{ws.IndexOf(first)}, hidden)
}

func TestLayout_TwoColumnsSplitsEvenlyUnderCap(t *testing.T) {
	assert := assert.New(t)

	conn := newFakeConn()
	cfg := config.Default()
	cfg.BorderPixel = 0
	mon := NewMonitor(cfg, 1200, 800)
	ws := mon.Workspaces()[0]
	ws.Layout = NewLayout(ws, TwoColumns)

	_, err := addClient(conn, mon, ws, 1)
	assert.NoError(err)
	_, err = addClient(conn, mon, ws, 2)
	assert.NoError(err)
	ws.Layout.UpdateRange()

	visible, hidden := ws.Layout.Arrange()
	assert.Empty(hidden)
	assert.Len(visible, 2)
	assert.Equal(Geometry{X: 0, Y: 0, W: 600, H: 800}, visible[0].Geometry)
	assert.Equal(Geometry{X: 600, Y: 0, W: 600, H: 800}, visible[1].Geometry)
}

func TestLayout_TwoColumnsSlidesRangeOnOverflow(t *testing.T) {
	assert := assert.New(t)

	conn := newFakeConn()
	cfg := config.Default()
	cfg.BorderPixel = 0
	mon := NewMonitor(cfg, 1200, 800)
	ws := mon.Workspaces()[0]
	ws.Layout = NewLayout(ws, TwoColumns)

	var clients []*Client
	for i := Window(1); i <= 3; i++ {
		c, err := addClient(conn, mon, ws, i)
		assert.NoError(err)
		clients = append(clients, c)
	}

	// Each client is inserted right after the still-current first one,
	// so ws.Clients is [1, 3, 2]; focusing the tail slides the range.
	assert.NoError(ws.Focus(conn, ws.Clients[2]))

	assert.Equal(1, ws.Layout.Start)
	assert.Equal(3, ws.Layout.End)

	visible, hidden := ws.Layout.Arrange()
	assert.Equal([]int{0}, hidden)
	assert.Len(visible, 2)
	indices := []int{visible[0].Index, visible[1].Index}
	assert.ElementsMatch([]int{1, 2}, indices)
}

func TestLayout_ArrangeOnlyAppliesToCurrentWorkspace(t *testing.T) {
	assert := assert.New(t)

	conn := newFakeConn()
	cfg := config.Default()
	mon := NewMonitor(cfg, 1200, 800)
	ws := mon.Workspaces()[1]

	_, err := addClient(conn, mon, ws, 1)
	assert.NoError(err)

	visible, hidden := ws.Layout.Arrange()
	assert.Nil(visible)
	assert.Nil(hidden)
}
