package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonitor_NewMonitorBuildsOneWorkspacePerTag(t *testing.T) {
	assert := assert.New(t)
	_, mon := newTestMonitor()

	assert.Len(mon.Workspaces(), 5)
	assert.Equal("wrk", mon.Workspaces()[0].Tag)
	assert.Same(mon, mon.Workspaces()[0].Monitor)
	assert.Same(mon.CurrentWorkspace(), mon.Workspaces()[0])
}

func TestMonitor_AddClientInsertsAfterCurrent(t *testing.T) {
	assert := assert.New(t)
	conn, mon := newTestMonitor()
	ws := mon.Workspaces()[0]

	first, err := addClient(conn, mon, ws, 1)
	assert.NoError(err)
	second, err := addClient(conn, mon, ws, 2)
	assert.NoError(err)
	assert.NoError(ws.Focus(conn, first))
	third, err := addClient(conn, mon, ws, 3)
	assert.NoError(err)

	assert.Equal([]*Client{first, third, second}, mon.Clients())
}

func TestMonitor_FindClientLooksUpByWindow(t *testing.T) {
	assert := assert.New(t)
	conn, mon := newTestMonitor()
	ws := mon.Workspaces()[0]

	c, err := addClient(conn, mon, ws, 42)
	assert.NoError(err)

	assert.Same(c, mon.FindClient(42))
	assert.Nil(mon.FindClient(99))
}

func TestMonitor_DeleteClientBiasesFocusToNewHeadWhenFirstRemoved(t *testing.T) {
	assert := assert.New(t)
	conn, mon := newTestMonitor()
	ws := mon.Workspaces()[0]

	// current stays on "first" through both inserts, so Monitor.clients
	// ends up [first, third, second]: each new client is inserted right
	// after the still-current first one.
	first, err := addClient(conn, mon, ws, 1)
	assert.NoError(err)
	_, err = addClient(conn, mon, ws, 2)
	assert.NoError(err)
	third, err := addClient(conn, mon, ws, 3)
	assert.NoError(err)

	assert.NoError(mon.DeleteClient(conn, first))

	assert.Equal(third, ws.Current, "removing the first client refocuses the new index 0")
	assert.Len(ws.Clients, 2)
	assert.Nil(mon.FindClient(1))
}

func TestMonitor_DeleteClientBiasesFocusToTailWhenNotFirst(t *testing.T) {
	assert := assert.New(t)
	conn, mon := newTestMonitor()
	ws := mon.Workspaces()[0]

	// same insertion pattern as above: Monitor.clients ends up
	// [first, third, second]. Removing "third", a middle client, leaves
	// "first" at index 0, so the tail-bias branch applies.
	_, err := addClient(conn, mon, ws, 1)
	assert.NoError(err)
	second, err := addClient(conn, mon, ws, 2)
	assert.NoError(err)
	third, err := addClient(conn, mon, ws, 3)
	assert.NoError(err)

	assert.NoError(mon.DeleteClient(conn, third))

	assert.Equal(second, ws.Current, "removing a non-first client refocuses the new tail")
	assert.Len(ws.Clients, 2)
}

func TestMonitor_DeleteClientLastLeavesWorkspaceEmpty(t *testing.T) {
	assert := assert.New(t)
	conn, mon := newTestMonitor()
	ws := mon.Workspaces()[0]

	c, err := addClient(conn, mon, ws, 1)
	assert.NoError(err)

	assert.NoError(mon.DeleteClient(conn, c))
	assert.Empty(ws.Clients)
	assert.Nil(ws.Current)
}

func TestMonitor_SetWorkspaceHidesOutgoingAndFocusesIncoming(t *testing.T) {
	assert := assert.New(t)
	conn, mon := newTestMonitor()
	ws0 := mon.Workspaces()[0]
	ws1 := mon.Workspaces()[1]

	onZero, err := addClient(conn, mon, ws0, 1)
	assert.NoError(err)
	onOne, err := addClient(conn, mon, ws1, 2)
	assert.NoError(err)

	assert.NoError(mon.SetWorkspace(conn, 1))

	assert.Same(ws1, mon.CurrentWorkspace())
	assert.Equal(onOne.Window, conn.focused)
	assert.Equal(-2*onZero.Geometry.W, conn.geometry[onZero.Window].X, "outgoing workspace's client must be parked off-screen")
}

func TestMonitor_SetWorkspaceIsNoopWhenAlreadyCurrent(t *testing.T) {
	assert := assert.New(t)
	conn, mon := newTestMonitor()

	flushesBefore := conn.flushes
	assert.NoError(mon.SetWorkspace(conn, 0))
	assert.Equal(flushesBefore, conn.flushes)
}

func TestMonitor_NextWorkspaceWrapsBothDirections(t *testing.T) {
	assert := assert.New(t)
	conn, mon := newTestMonitor()

	assert.NoError(mon.NextWorkspace(conn, true))
	assert.Same(mon.Workspaces()[4], mon.CurrentWorkspace())

	assert.NoError(mon.NextWorkspace(conn, false))
	assert.Same(mon.Workspaces()[0], mon.CurrentWorkspace())
}
