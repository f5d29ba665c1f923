package instance_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cablenet/cable"
	"github.com/katalvlaran/cablenet/core"
	"github.com/katalvlaran/cablenet/instance"
)

// InstanceSuite exercises construction, lookups and costs on a small farm:
// root 1 feeding turbines 2 and 3, junction 4.
type InstanceSuite struct {
	suite.Suite
	g     *core.Digraph
	model cable.Model
	dist  map[core.Arc]float64
}

func (s *InstanceSuite) SetupTest() {
	s.g = core.NewDigraph()
	s.dist = map[core.Arc]float64{}
	for _, a := range []core.Arc{{From: 1, To: 2}, {From: 1, To: 3}, {From: 1, To: 4}, {From: 4, To: 3}, {From: 2, To: 3}} {
		s.Require().NoError(s.g.AddArc(a.From, a.To))
		s.dist[a] = 10
	}
	s.model = cable.Model{
		Catalog: cable.Catalog{
			Static:  map[int]float64{1: 2.0, 2: 3.5},
			Dynamic: map[int]float64{1: 8.0, 2: 9.0},
		},
		DistanceMin:            1,
		DynamicStaticBranching: 0.25,
	}
}

func (s *InstanceSuite) build(extra ...instance.Option) (*instance.Instance, error) {
	opts := []instance.Option{
		instance.WithRequired(2, 3),
		instance.WithDistances(s.dist),
		instance.WithModel(s.model),
		instance.WithMaxOutputDegree(1, 2),
		instance.WithMaxNbSec(1),
	}
	return instance.New(s.g, 1, append(opts, extra...)...)
}

func (s *InstanceSuite) TestGetters() {
	inst, err := s.build()
	s.Require().NoError(err)

	s.Equal(core.Node(1), inst.Root())
	s.Equal([]core.Node{2, 3}, inst.Required())
	s.Equal(2, inst.RequiredCount())
	s.True(inst.IsRequired(3))
	s.False(inst.IsRequired(4))
	s.Equal(1, inst.MaxNbSec())

	d, ok := inst.MaxOutputDegree(1)
	s.True(ok)
	s.Equal(2, d)
	_, ok = inst.MaxOutputDegree(4)
	s.False(ok, "nodes without a limit are unconstrained")

	s.Equal(0, inst.RequiredEndpoints(core.Arc{From: 1, To: 4}))
	s.Equal(1, inst.RequiredEndpoints(core.Arc{From: 1, To: 2}))
	s.Equal(2, inst.RequiredEndpoints(core.Arc{From: 2, To: 3}))
}

func (s *InstanceSuite) TestModelIsCopied() {
	inst, err := s.build()
	s.Require().NoError(err)
	s.model.Catalog.Static[1] = 100

	c, err := inst.StaticCableCost(core.Arc{From: 1, To: 4}, 1)
	s.Require().NoError(err)
	s.InDelta(20.0, c, 1e-9)
}

func (s *InstanceSuite) TestCosts() {
	inst, err := s.build()
	s.Require().NoError(err)

	c, err := inst.RealCableCost(core.Arc{From: 1, To: 4}, 2)
	s.Require().NoError(err)
	s.InDelta(35.0, c, 1e-9)

	c, err = inst.RealCableCost(core.Arc{From: 2, To: 3}, 1)
	s.Require().NoError(err)
	s.InDelta(8*2.0+2*8.0+0.5, c, 1e-9)

	c, err = inst.DynamicCableCost(core.Arc{From: 1, To: 2}, 2)
	s.Require().NoError(err)
	s.InDelta(90.0, c, 1e-9)

	_, err = inst.RealCableCost(core.Arc{From: 1, To: 4}, 3)
	s.ErrorIs(err, cable.ErrUndefinedCost)

	_, err = inst.RealCableCost(core.Arc{From: 3, To: 1}, 1)
	s.ErrorIs(err, core.ErrArcNotFound)
}

func (s *InstanceSuite) TestLayoutCost() {
	inst, err := s.build()
	s.Require().NoError(err)

	asg := instance.Assignment{{From: 1, To: 4}: 1, {From: 4, To: 3}: 1}
	total, err := inst.LayoutCost(asg)
	s.Require().NoError(err)
	s.InDelta(20.0+(9*2.0+8.0+0.25), total, 1e-9)

	asg[core.Arc{From: 1, To: 2}] = 5
	_, err = inst.LayoutCost(asg)
	s.ErrorIs(err, cable.ErrUndefinedCost)
}

func (s *InstanceSuite) TestInvalid() {
	cases := []struct {
		name string
		opt  instance.Option
		want error
	}{
		{"zero maxNbSec", instance.WithMaxNbSec(0), instance.ErrInvalidInstance},
		{"unknown required", instance.WithRequired(9), instance.ErrUnknownNode},
		{"unknown degree node", instance.WithMaxOutputDegree(9, 1), instance.ErrUnknownNode},
		{"negative degree", instance.WithMaxOutputDegree(2, -1), instance.ErrInvalidInstance},
		{"negative distance", instance.WithDistance(core.Arc{From: 1, To: 2}, -1), instance.ErrInvalidInstance},
		{"empty catalog", instance.WithModel(cable.Model{}), instance.ErrInvalidInstance},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.build(tc.opt)
			s.ErrorIs(err, tc.want)
			s.ErrorIs(err, instance.ErrInvalidInstance)
		})
	}

	_, err := instance.New(nil, 1)
	s.ErrorIs(err, instance.ErrNilGraph)

	_, err = instance.New(s.g, 42)
	s.ErrorIs(err, instance.ErrRootNotFound)

	_, err = instance.New(s.g, 1, instance.WithModel(s.model), instance.WithMaxNbSec(1))
	s.ErrorIs(err, instance.ErrMissingDistance)
}

func (s *InstanceSuite) TestRestrict() {
	inst, err := s.build(instance.WithMaxOutputDegree(4, 1))
	s.Require().NoError(err)

	sub, err := inst.Restrict([]core.Node{3, 4}, instance.WithMaxOutputDegree(1, 1))
	s.Require().NoError(err)

	s.Equal([]core.Node{1, 3, 4}, sub.Graph().Nodes())
	s.Equal([]core.Arc{{From: 1, To: 3}, {From: 1, To: 4}, {From: 4, To: 3}}, sub.Graph().Arcs())
	s.Equal([]core.Node{3}, sub.Required())
	d, _ := sub.MaxOutputDegree(1)
	s.Equal(1, d, "root limit overridden")
	d, _ = sub.MaxOutputDegree(4)
	s.Equal(1, d)
	s.Equal(inst.MaxNbSec(), sub.MaxNbSec())
	l, ok := sub.Distance(core.Arc{From: 4, To: 3})
	s.True(ok)
	s.Equal(10.0, l)
}

func TestInstanceSuite(t *testing.T) {
	suite.Run(t, new(InstanceSuite))
}

func TestAssignment(t *testing.T) {
	a := instance.Assignment{{From: 2, To: 3}: 4, {From: 1, To: 2}: 4, {From: 1, To: 5}: 1}
	require.Equal(t, []core.Arc{{From: 1, To: 2}, {From: 1, To: 5}, {From: 2, To: 3}}, a.Arcs())
	require.Equal(t, []int{1, 4}, a.Capacities())

	b := a.Clone()
	b[core.Arc{From: 1, To: 5}] = 9
	require.Equal(t, 1, a[core.Arc{From: 1, To: 5}])
}
