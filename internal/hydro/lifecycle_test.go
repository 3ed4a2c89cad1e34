package hydro

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sphlab/internal/params"
	"sphlab/internal/phys"
	"sphlab/internal/snapshot"
	"sphlab/internal/units"
)

// End-to-end lifecycle behavior: exactly one of resolve or mock
// initializes the records, then report and export observe them
// read-only.
var _ = Describe("hydro parameter lifecycle", func() {
	var (
		us *units.System
		pc *phys.Constants
	)

	BeforeEach(func() {
		us = units.CGS()
		pc = phys.CGS()
	})

	parse := func(src string) *params.Store {
		p, err := params.Parse([]byte(src))
		Expect(err).NotTo(HaveOccurred())
		return p
	}

	Describe("resolving from a parameter file", func() {
		It("fills every enabled record in a single pass", func() {
			h, err := Resolve(parse(mhdFullYAML), us, pc, WithMHD())
			Expect(err).NotTo(HaveOccurred())
			Expect(h.Viscosity.Alpha).To(Equal(DefaultViscosityAlpha))
			Expect(h.MHD).NotTo(BeNil())
			Expect(h.MHD.WithDivBCleaning).To(BeTrue())
			Expect(h.MHD.DivBOverCleanFactor).To(Equal(1.5))
		})

		It("yields no partial record when a required key is missing", func() {
			h, err := Resolve(parse("SPH:\n  viscosity_alpha: 0.5\n"), us, pc, WithMHD())
			Expect(err).To(MatchError(params.ErrMissing))
			Expect(h).To(BeNil())
		})

		It("aborts fatally on an over-clean factor below one", func() {
			src := mhdYAMLWithout("div_B_over_clean_factor") +
				"  div_B_over_clean_factor: 0.5\n"
			h, err := Resolve(parse(src), us, pc, WithMHD())
			Expect(err).To(MatchError(ErrOverCleanFactor))
			Expect(h).To(BeNil())
		})
	})

	Describe("mocking without a parameter file", func() {
		It("produces identical records on every invocation", func() {
			a, b := Mock(WithMHD()), Mock(WithMHD())
			Expect(a.Viscosity).To(Equal(b.Viscosity))
			Expect(*a.MHD).To(Equal(*b.MHD))
		})

		It("keeps the MHD surface absent unless enabled", func() {
			h := Mock()
			Expect(h.MHD).To(BeNil())

			g := snapshot.NewMemGroup()
			Expect(h.Export(g)).To(Succeed())
			_, ok := g.Lookup("divB cleaning turned on")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("exporting an initialized record", func() {
		It("writes the identical attribute set to two sinks", func() {
			h, err := Resolve(parse(mhdFullYAML), us, pc, WithMHD())
			Expect(err).NotTo(HaveOccurred())

			g1, g2 := snapshot.NewMemGroup(), snapshot.NewMemGroup()
			Expect(h.Export(g1)).To(Succeed())
			Expect(h.Export(g2)).To(Succeed())
			Expect(g1.Attrs()).To(Equal(g2.Attrs()))
		})
	})
})
