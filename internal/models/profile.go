// internal/models/profile.go
package models

// BusinessType is the kind of local business the visitor runs.
type BusinessType string

const (
	BusinessRestaurant BusinessType = "restaurant"
	BusinessCafe       BusinessType = "cafe"
	BusinessSalon      BusinessType = "salon"
	BusinessFitness    BusinessType = "fitness"
	BusinessBar        BusinessType = "bar"
	BusinessRetail     BusinessType = "retail"
	BusinessOther      BusinessType = "other"
)

// BudgetRange buckets whatever budget signal the visitor gave.
type BudgetRange string

const (
	BudgetTight        BudgetRange = "tight"
	BudgetEssential    BudgetRange = "essential"
	BudgetProfessional BudgetRange = "professional"
	BudgetPremium      BudgetRange = "premium"
	BudgetFlexible     BudgetRange = "flexible"
)

// TimelineUrgency captures how soon the visitor wants to launch.
type TimelineUrgency string

const (
	TimelineUrgent    TimelineUrgency = "urgent"
	TimelineSoon      TimelineUrgency = "soon"
	TimelineFlexible  TimelineUrgency = "flexible"
	TimelineExploring TimelineUrgency = "exploring"
)

// DecisionRole is the visitor's authority over the purchase.
// The zero value means we do not know yet.
type DecisionRole string

const (
	DecisionOwner         DecisionRole = "owner"
	DecisionNeedsApproval DecisionRole = "needs_approval"
	DecisionInfluencer    DecisionRole = "influencer"
)

// FeatureTag marks a website capability the visitor asked about.
type FeatureTag string

const (
	FeatureAI           FeatureTag = "ai"
	FeatureOrdering     FeatureTag = "ordering"
	FeatureBooking      FeatureTag = "booking"
	FeatureEcommerce    FeatureTag = "ecommerce"
	FeatureSEO          FeatureTag = "seo"
	FeatureCustomDesign FeatureTag = "custom_design"
	FeaturePayments     FeatureTag = "payments"
	FeatureEmail        FeatureTag = "email_marketing"
)

// PainPointTag marks a problem the visitor described with their current setup.
type PainPointTag string

const (
	PainNoWebsite       PainPointTag = "no_website"
	PainOutdated        PainPointTag = "outdated"
	PainNoOrdering      PainPointTag = "no_ordering"
	PainNoBooking       PainPointTag = "no_booking"
	PainLosingCustomers PainPointTag = "losing_customers"
	PainNotOnGoogle     PainPointTag = "not_on_google"
	PainUnprofessional  PainPointTag = "unprofessional"
	PainNoMobile        PainPointTag = "no_mobile"
	PainCantUpdate      PainPointTag = "cant_update"
)

// ConversationProfile is the accumulated understanding of one visitor
// across a session. Scalar fields are only ever overwritten with non-empty
// values; the set-valued fields only grow. Merging is owned by the engine,
// not by the extractor.
type ConversationProfile struct {
	BusinessType    BusinessType    `json:"businessType,omitempty"`
	BusinessName    string          `json:"businessName,omitempty"`
	BudgetRange     BudgetRange     `json:"budgetRange,omitempty"`
	TimelineUrgency TimelineUrgency `json:"timelineUrgency,omitempty"`
	FeaturesNeeded  []FeatureTag    `json:"featuresNeeded,omitempty"`
	PainPoints      []PainPointTag  `json:"painPoints,omitempty"`
	DecisionRole    DecisionRole    `json:"decisionRole,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
}

// HasFeature reports whether the profile already carries the given tag.
func (p *ConversationProfile) HasFeature(tag FeatureTag) bool {
	for _, f := range p.FeaturesNeeded {
		if f == tag {
			return true
		}
	}
	return false
}

// HasPainPoint reports whether the profile already carries the given tag.
func (p *ConversationProfile) HasPainPoint(tag PainPointTag) bool {
	for _, pp := range p.PainPoints {
		if pp == tag {
			return true
		}
	}
	return false
}

// ExtractedEntities is what the entity extractor found in a single
// utterance. Empty fields mean "not found"; the engine merges non-empty
// fields into the session profile.
type ExtractedEntities struct {
	BusinessType    BusinessType    `json:"businessType,omitempty"`
	BusinessName    string          `json:"businessName,omitempty"`
	BudgetRange     BudgetRange     `json:"budgetRange,omitempty"`
	BudgetAmount    int             `json:"budgetAmount,omitempty"`
	TimelineUrgency TimelineUrgency `json:"timelineUrgency,omitempty"`
	FeaturesNeeded  []FeatureTag    `json:"featuresNeeded,omitempty"`
	PainPoints      []PainPointTag  `json:"painPoints,omitempty"`
	DecisionRole    DecisionRole    `json:"decisionRole,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
}

// IsEmpty reports whether the extractor found nothing at all.
func (e *ExtractedEntities) IsEmpty() bool {
	return e.BusinessType == "" && e.BusinessName == "" && e.BudgetRange == "" &&
		e.TimelineUrgency == "" && len(e.FeaturesNeeded) == 0 && len(e.PainPoints) == 0 &&
		e.DecisionRole == "" && e.Email == "" && e.Phone == ""
}
