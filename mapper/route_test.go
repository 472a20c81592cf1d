package mapper_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mapper/mapper"
)

var _ = Describe("Route", func() {
	It("routes a placed producer/consumer channel to a passing state", func() {
		top := buildChainFabric(3)
		tg := buildProducerConsumerGraph()
		m, err := mapper.New(top, tg, coreOracle{})
		Expect(err).NotTo(HaveOccurred())

		m, err = mapper.Place(m, mapper.PlaceOptions{
			Seed:                 1,
			MoveAttempts:         20,
			WarmTargetAcceptance: 0.5,
			MaxHop:               2,
			MaxRounds:            5,
		})
		Expect(err).NotTo(HaveOccurred())

		m, err = mapper.Route(m, mapper.RouteOptions{MaxIterations: 10})

		Expect(err).NotTo(HaveOccurred())
		Expect(m.Metrics.RoutingGlobalLinks).To(BeNumerically(">", 0))
		Expect(m.Channels).To(HaveLen(1))
	})
})
