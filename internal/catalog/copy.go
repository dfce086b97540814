package catalog

// Link is a navigation entry. Items turn it into a dropdown.
type Link struct {
	Label    string
	Href     string
	External bool
	Items    []Link
}

func (l Link) HasDropdown() bool { return len(l.Items) > 0 }

const Brand = "AI Chair"

// Nav returns the header links in display order.
func Nav() []Link {
	return []Link{
		{Label: "Products", Href: "#products"},
		{Label: "Technology", Href: "#technology"},
		{Label: "Features", Href: "#features", Items: []Link{
			{Label: "AI Voice Control", Href: "#voice"},
			{Label: "Posture Analysis", Href: "#posture"},
			{Label: "Temperature Control", Href: "#temperature"},
			{Label: "Massage Functions", Href: "#massage"},
			{Label: "Health Monitoring", Href: "#health"},
		}},
		{Label: "Resources", Href: "#resources", Items: []Link{
			{Label: "Blog", Href: "#blog", External: true},
			{Label: "Guides", Href: "#guides"},
			{Label: "Support Center", Href: "#support"},
			{Label: "API Reference", Href: "#api"},
		}},
		{Label: "Docs", Href: "#docs"},
		{Label: "Pricing", Href: "#pricing"},
	}
}

var (
	SignIn     = Link{Label: "Sign in", Href: "#signin"}
	TryForFree = Link{Label: "Try For Free", Href: "#trial"}
)

// Hero copy.
const (
	Banner           = "Revolutionary IoT Furniture"
	Headline         = "Intelligent chairs for"
	SubHeadline      = "Experience AI-powered chairs that adapt to your body, monitor your posture, and connect to your smart home - transforming how you sit, work, and live."
	EmailPlaceholder = "Your email"
	EarlyAccess      = "Get Early Access"
	Trial            = "30-day risk-free trial"
	ConnectsWith     = "CONNECTS WITH"
	HeroImageAlt     = "AI-powered ergonomic chair with sensors and control panel"
)

var (
	RotatingWords = []string{"Perfect Posture", "Ultimate Comfort", "Productivity", "Health Monitoring", "Smart Living"}
	Platforms     = []string{"Apple HomeKit", "Google Home", "Amazon Alexa", "SmartThings", "AND MORE"}
)

// Showcase copy.
const (
	CollectionKicker = "OUR COLLECTION"
	CollectionTitle  = "AI-Powered Chairs"
	CollectionIntro  = "Discover our revolutionary smart chairs that combine cutting-edge AI technology with unparalleled comfort, designed to transform how you sit, work, and live."
	SpecsTitle       = "Specifications"
	FeaturesTitle    = "Smart Features"
	AddToCart        = "Add to Cart"
	LearnMore        = "Learn More"
	ClosingTitle     = "Ready to upgrade your sitting experience?"
	ClosingBody      = "Join the revolution of smart furniture and experience the perfect blend of technology and comfort."
	ShopAll          = "Shop All Chairs"
	ScheduleDemo     = "Schedule a Demo"
)
