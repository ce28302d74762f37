package dataset

// Registered dataset names.
const (
	StateConcentration    = "State Concentration"
	VantageScoreBands     = "Vantage Score Bands"
	Industries            = "Industries"
	MerchantConcentration = "Merchant Concentration"
	LoanTerms             = "Loan Terms"
	LoanSize              = "Loan Size"
	PromoMix              = "Promo Mix"
	StaticPool            = "Static Pool"
	CreditEnhancement     = "Credit Enhancement"
	Clinics               = "Clinics"
)

// Default returns the compiled-in pool tables.
func Default() *Registry {
	reg, err := NewRegistry(defaultDatasets()...)
	if err != nil {
		panic(err)
	}
	return reg
}

func defaultDatasets() []Dataset {
	s, n, b := String, Number, Bool
	return []Dataset{
		mustNew(StateConcentration,
			[]string{"State", "State Code", "Balance ($M)", "Avg Vantage", "Avg APR (%)"},
			Record{s("California"), s("CA"), n(48.6), n(701), n(17.9)},
			Record{s("Texas"), s("TX"), n(39.2), n(688), n(19.4)},
			Record{s("Florida"), s("FL"), n(33.8), n(692), n(18.8)},
			Record{s("New York"), s("NY"), n(24.1), n(709), n(17.2)},
			Record{s("Arizona"), s("AZ"), n(14.7), n(695), n(18.6)},
			Record{s("Georgia"), s("GA"), n(13.9), n(684), n(19.8)},
			Record{s("Illinois"), s("IL"), n(12.5), n(703), n(17.6)},
			Record{s("New Jersey"), s("NJ"), n(11.8), n(711), n(16.9)},
			Record{s("North Carolina"), s("NC"), n(10.4), n(690), n(18.9)},
			Record{s("Nevada"), s("NV"), n(9.6), n(686), n(19.5)},
			Record{s("Colorado"), s("CO"), n(8.9), n(712), n(16.8)},
			Record{s("Massachusetts"), s("MA"), n(8.3), n(718), n(16.4)},
			Record{s("Other"), s("ZZ"), n(35.8), n(697), n(18.3)},
		),
		mustNew(VantageScoreBands,
			[]string{"Score Band", "Balance ($M)", "Share (%)"},
			Record{s("800+"), n(31.5), n(11.6)},
			Record{s("750-799"), n(58.9), n(21.7)},
			Record{s("700-749"), n(79.4), n(29.2)},
			Record{s("650-699"), n(66.2), n(24.4)},
			Record{s("600-649"), n(35.6), n(13.1)},
		),
		mustNew(Industries,
			[]string{"Industry", "Balance ($M)"},
			Record{s("Dental"), n(113.9)},
			Record{s("Medspa"), n(111.3)},
			Record{s("Cosmetic Surgery"), n(44.7)},
			Record{s("Other"), n(1.7)},
		),
		mustNew(MerchantConcentration,
			[]string{"Merchant", "Industry", "Balance ($M)"},
			Record{s("Bright Smile Dental Group"), s("Dental"), n(9.8)},
			Record{s("Glow Aesthetics"), s("Medspa"), n(8.7)},
			Record{s("Coastal Oral Surgery"), s("Dental"), n(7.1)},
			Record{s("Contour Plastic Surgery"), s("Cosmetic Surgery"), n(6.4)},
			Record{s("Radiance Medspa"), s("Medspa"), n(5.9)},
			Record{s("Summit Family Dentistry"), s("Dental"), n(4.8)},
			Record{s("Sculpt Body Studio"), s("Medspa"), n(4.2)},
			Record{s("Elite Cosmetic Institute"), s("Cosmetic Surgery"), n(3.6)},
		),
		mustNew(LoanTerms,
			[]string{"Term", "Balance ($M)"},
			Record{s("12 months"), n(28.4)},
			Record{s("24 months"), n(61.7)},
			Record{s("36 months"), n(94.3)},
			Record{s("48 months"), n(52.1)},
			Record{s("60 months"), n(35.1)},
		),
		mustNew(LoanSize,
			[]string{"Loan Size", "Balance ($M)"},
			Record{s("< $5K"), n(22.6)},
			Record{s("$5K-$10K"), n(68.9)},
			Record{s("$10K-$15K"), n(81.2)},
			Record{s("$15K-$25K"), n(63.5)},
			Record{s("> $25K"), n(35.4)},
		),
		mustNew(PromoMix,
			[]string{"Loan Type", "Balance ($M)", "Share (%)"},
			Record{s("Promo"), n(104.3), n(38.4)},
			Record{s("Non-Promo"), n(167.3), n(61.6)},
		),
		mustNew(StaticPool,
			[]string{"Month", "Cumulative Loss (%)", "30+ Delinquency (%)"},
			Record{s("Month 3"), n(0.12), n(0.85)},
			Record{s("Month 6"), n(0.48), n(1.42)},
			Record{s("Month 9"), n(1.05), n(1.88)},
			Record{s("Month 12"), n(1.71), n(2.10)},
			Record{s("Month 15"), n(2.32), n(2.24)},
			Record{s("Month 18"), n(2.86), n(2.31)},
		),
		mustNew(CreditEnhancement,
			[]string{"Component", "Amount (%)", "Total"},
			Record{s("Excess Spread"), n(11.22), b(false)},
			Record{s("Reserve Fund"), n(1.0), b(false)},
			Record{s("Subordination"), n(27.51), b(false)},
			Record{s("Overcollateralization"), n(4.25), b(false)},
			Record{s("Total Credit Enhancement"), n(43.98), b(true)},
		),
		mustNew(Clinics,
			[]string{"Clinic", "Loan Amount ($)", "45+ at Statement (%)"},
			Record{s("Mount Laurel Animal Hospital"), n(324074), n(3.3)},
			Record{s("MSPCA - Angell Animal Medical Center"), n(321719), n(6.0)},
			Record{s("Veterinary Emergency & Referral Group"), n(298475), n(0.0)},
			Record{s("Gulf Coast Veterinary Specialists (GCVS) - Houston"), n(286118), n(3.9)},
			Record{s("Eclipse"), n(283366), n(0.0)},
			Record{s("VEG Clifton"), n(266840), n(1.7)},
			Record{s("Massachusetts Veterinary Referral Hospital (MVRH)"), n(255268), n(0.6)},
			Record{s("Animal Emergency & Referral Center of MN (RED)"), n(223783), n(3.0)},
			Record{s("Summit Veterinary Referral Center"), n(214595), n(3.8)},
			Record{s("Animal Emergency and Specialty Hospital of Byron Center"), n(201339), n(3.0)},
		),
	}
}
