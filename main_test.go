package main

import (
	"testing"

	"multigrid/grid"
	"multigrid/world"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPatrolSteps(t *testing.T) {
	Convey("When the patrol agent steps", t, func() {
		Convey("When stepping ahead follows the facing", func() {
			p := grid.Point{X: 2, Y: 2}
			So(ahead(p, world.DirRight), ShouldResemble, grid.Point{X: 3, Y: 2})
			So(ahead(p, world.DirDown), ShouldResemble, grid.Point{X: 2, Y: 3})
			So(ahead(p, world.DirLeft), ShouldResemble, grid.Point{X: 1, Y: 2})
			So(ahead(p, world.DirUp), ShouldResemble, grid.Point{X: 2, Y: 1})
		})

		Convey("When turning left cycles counter-clockwise", func() {
			So(turnLeft(world.DirRight), ShouldEqual, world.DirUp)
			So(turnLeft(world.DirUp), ShouldEqual, world.DirLeft)
			So(turnLeft(world.DirLeft), ShouldEqual, world.DirDown)
			So(turnLeft(world.DirDown), ShouldEqual, world.DirRight)
		})
	})
}

func TestEgoView(t *testing.T) {
	Convey("When the egocentric view is cropped", t, func() {
		g, err := grid.FromStrings(defaultMap)
		So(err, ShouldBeNil)
		pos, dir, ok := g.AgentPos()
		So(ok, ShouldBeTrue)
		So(dir, ShouldEqual, world.DirRight)

		Convey("When the view has the observation span", func() {
			view, err := egoView(g, pos, dir)
			So(err, ShouldBeNil)
			So(view.Width(), ShouldEqual, egoSpan)
			So(view.Height(), ShouldEqual, egoSpan)
		})

		Convey("When the agent ends up bottom-center", func() {
			view, err := egoView(g, pos, dir)
			So(err, ShouldBeNil)

			agent, _, ok := view.AgentPos()
			So(ok, ShouldBeTrue)
			So(agent, ShouldResemble, grid.Point{X: egoSpan / 2, Y: egoSpan - 1})
		})

		Convey("When off-grid regions pad with walls", func() {
			open, err := grid.FromStrings([]string{
				"......",
				".<....",
				"......",
				"......",
				"......",
				"......",
			})
			So(err, ShouldBeNil)

			view, err := egoView(open, grid.Point{X: 1, Y: 1}, world.DirLeft)
			So(err, ShouldBeNil)
			// The crop extends past the left edge; only padding yields walls.
			So(view.ContainsKey("", "wall"), ShouldBeTrue)
		})

		Convey("When the facing is invalid", func() {
			_, err := egoView(g, pos, 7)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestObserve(t *testing.T) {
	Convey("When an observation frame is taken", t, func() {
		g, err := grid.FromStrings(defaultMap)
		So(err, ShouldBeNil)
		pos, _, _ := g.AgentPos()
		cfg := world.DefaultConfig()

		frame := observe(g, pos, cfg)

		Convey("When the frame grid is an independent copy", func() {
			So(frame.Grid, ShouldNotEqual, g)
			frame.Grid.Set(pos.X, pos.Y, nil)
			So(g.Get(pos.X, pos.Y), ShouldNotBeNil)
		})

		Convey("When the observer's own cell is visible", func() {
			So(frame.Vis[pos.X][pos.Y], ShouldBeTrue)
			So(frame.Observer, ShouldResemble, pos)
		})
	})
}
