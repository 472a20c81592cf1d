package placement_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mapper/maptable"
	"github.com/sarchlab/mapper/placement"
)

var _ = Describe("State", func() {
	var (
		mt    *maptable.MapTable
		nodes []*placement.Node
		s     *placement.State
	)

	BeforeEach(func() {
		mt, _ = buildChainFixture(3)
		_, dist := buildChainFixture(3)
		nodes = []*placement.Node{
			{Name: "a", Class: 0},
			{Name: "b", Class: 0},
		}
		s = placement.New(nodes, nil, mt, dist)
	})

	It("assigns a node to a legal, empty location", func() {
		loc := placement.NewLocation(mt.ValidAddresses(0)[0], 0)

		Expect(s.Assign(0, loc)).To(Succeed())
		Expect(s.Location(0)).To(Equal(loc))

		occ, ok := s.OccupantAt(loc)
		Expect(ok).To(BeTrue())
		Expect(occ).To(Equal(0))
	})

	It("rejects assigning onto an occupied location", func() {
		addrs := mt.ValidAddresses(0)
		loc := placement.NewLocation(addrs[0], 0)

		Expect(s.Assign(0, loc)).To(Succeed())
		err := s.Assign(1, loc)

		Expect(err).To(HaveOccurred())
		var occErr *placement.OccupiedError
		Expect(err).To(BeAssignableToTypeOf(occErr))
	})

	It("moves a node, keeping the grid consistent", func() {
		addrs := mt.ValidAddresses(0)
		from := placement.NewLocation(addrs[0], 0)
		to := placement.NewLocation(addrs[1], 0)

		Expect(s.Assign(0, from)).To(Succeed())
		Expect(s.Move(0, to)).To(Succeed())

		_, stillThere := s.OccupantAt(from)
		Expect(stillThere).To(BeFalse())

		occ, ok := s.OccupantAt(to)
		Expect(ok).To(BeTrue())
		Expect(occ).To(Equal(0))
	})

	It("swaps two occupied locations atomically", func() {
		addrs := mt.ValidAddresses(0)
		locA := placement.NewLocation(addrs[0], 0)
		locB := placement.NewLocation(addrs[1], 0)

		Expect(s.Assign(0, locA)).To(Succeed())
		Expect(s.Assign(1, locB)).To(Succeed())

		Expect(s.Swap(0, 1)).To(Succeed())

		Expect(s.Location(0)).To(Equal(locB))
		Expect(s.Location(1)).To(Equal(locA))
	})

	It("rejects an illegal assignment without mutating the grid", func() {
		illegal := placement.NewLocation(mt.ValidAddresses(0)[0], 7)

		err := s.Assign(0, illegal)

		Expect(err).To(HaveOccurred())
		Expect(s.GridSize()).To(Equal(0))
	})
})
