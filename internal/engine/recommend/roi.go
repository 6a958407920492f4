// internal/engine/recommend/roi.go

package recommend

import "pegrio-chatbot/internal/models"

// monthlyRevenueTable holds the projected monthly revenue impact in USD
// per industry per package. Figures are static sales collateral, not
// live data. Restaurant is the fallback industry and professional the
// fallback package when a key is missing.
var monthlyRevenueTable = map[models.BusinessType]map[models.PackageTier]int{
	models.BusinessRestaurant: {
		models.PackageEssential:    800,
		models.PackageProfessional: 2500,
		models.PackagePremium:      5000,
	},
	models.BusinessCafe: {
		models.PackageEssential:    600,
		models.PackageProfessional: 1800,
		models.PackagePremium:      3500,
	},
	models.BusinessSalon: {
		models.PackageEssential:    700,
		models.PackageProfessional: 2200,
		models.PackagePremium:      4500,
	},
	models.BusinessFitness: {
		models.PackageEssential:    750,
		models.PackageProfessional: 2000,
		models.PackagePremium:      4000,
	},
	models.BusinessBar: {
		models.PackageEssential:    650,
		models.PackageProfessional: 1700,
		models.PackagePremium:      3200,
	},
	models.BusinessRetail: {
		models.PackageEssential:    900,
		models.PackageProfessional: 2800,
		models.PackagePremium:      6000,
	},
	models.BusinessOther: {
		models.PackageEssential:    500,
		models.PackageProfessional: 1500,
		models.PackagePremium:      3000,
	},
}

// EstimateROI derives the projection from the revenue table and the
// package price. Payback is rounded up to whole months.
func EstimateROI(business models.BusinessType, pkg models.PackageTier) models.ROIEstimate {
	industry, ok := monthlyRevenueTable[business]
	if !ok {
		industry = monthlyRevenueTable[models.BusinessRestaurant]
	}
	monthly, ok := industry[pkg]
	if !ok {
		monthly = industry[models.PackageProfessional]
	}

	price := models.PackagePrice(pkg)
	annual := 12 * monthly
	return models.ROIEstimate{
		MonthlyRevenue: monthly,
		PaybackMonths:  (price + monthly - 1) / monthly,
		FirstYearROI:   (annual - price) * 100 / price,
		Multiple:       float64(annual) / float64(price),
	}
}
