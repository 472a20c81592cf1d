package mapper_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mapper/mapper"
)

var _ = Describe("Place", func() {
	It("seats every node legally and reports a finite objective", func() {
		top := buildChainFabric(3)
		tg := buildProducerConsumerGraph()
		m, err := mapper.New(top, tg, coreOracle{})
		Expect(err).NotTo(HaveOccurred())

		m, err = mapper.Place(m, mapper.PlaceOptions{
			Seed:                 1,
			MoveAttempts:         20,
			InitialTemperature:   1.0,
			WarmTargetAcceptance: 0.5,
			MaxHop:               2,
			MaxRounds:            5,
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(m.Placement.GridSize()).To(Equal(2))
		Expect(m.Metrics.PlacementObjective).To(BeNumerically(">=", 0))
	})

	It("produces an identical objective and addresses whether or not flatness is enabled (S6)", func() {
		run := func(flatness *bool) (*mapper.Map, error) {
			top := buildChainFabric(3)
			tg := buildProducerConsumerGraph()
			m, err := mapper.New(top, tg, coreOracle{})
			Expect(err).NotTo(HaveOccurred())

			return mapper.Place(m, mapper.PlaceOptions{
				Seed:                 1,
				MoveAttempts:         20,
				InitialTemperature:   1.0,
				WarmTargetAcceptance: 0.5,
				MaxHop:               2,
				MaxRounds:            5,
				EnableFlatness:       flatness,
			})
		}

		flat, err := run(mapper.Flatness(true))
		Expect(err).NotTo(HaveOccurred())
		nonFlat, err := run(mapper.Flatness(false))
		Expect(err).NotTo(HaveOccurred())

		Expect(flat.Metrics.PlacementObjective).To(Equal(nonFlat.Metrics.PlacementObjective))
		for i := range flat.Placement.Nodes {
			Expect(flat.Placement.Nodes[i].Location.Address).
				To(Equal(nonFlat.Placement.Nodes[i].Location.Address))
		}
		Expect(flat.Metrics.FlatRepresentation).To(BeTrue())
		Expect(nonFlat.Metrics.FlatRepresentation).To(BeFalse())
	})

	It("returns PlacementInfeasibleError when there are more nodes than slots", func() {
		top := buildChainFabric(1)
		tg := buildProducerConsumerGraph()
		m, err := mapper.New(top, tg, coreOracle{})
		Expect(err).NotTo(HaveOccurred())

		_, err = mapper.Place(m, mapper.PlaceOptions{MoveAttempts: 5})

		Expect(err).To(HaveOccurred())
		var infeasible *mapper.PlacementInfeasibleError
		Expect(err).To(BeAssignableToTypeOf(infeasible))
	})
})
