package db

// SiteSettings holds site-wide identity, contact and social details.
type SiteSettings struct {
	SingletonModel
	SiteTitle      string `gorm:"size:100" json:"siteTitle"`
	HeroTitle      string `gorm:"size:200" json:"heroTitle"`
	HeroSubtitle   string `gorm:"type:text" json:"heroSubtitle"`
	AboutTitle     string `gorm:"size:100" json:"aboutTitle"`
	AboutContent   string `gorm:"type:text" json:"aboutContent"`
	ContactEmail   string `gorm:"size:254" json:"contactEmail"`
	ContactPhone   string `gorm:"size:20" json:"contactPhone"`
	ContactAddress string `gorm:"type:text" json:"contactAddress"`
	LinkedInURL    string `gorm:"column:linkedin_url;size:200" json:"linkedinUrl"`
	TwitterURL     string `gorm:"size:200" json:"twitterUrl"`
	FacebookURL    string `gorm:"size:200" json:"facebookUrl"`
}

func (SiteSettings) TableName() string { return "site_settings" }

// DefaultSiteSettings returns the seed content used when no settings row exists.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteTitle:  "Srinikethan - Financial Coach",
		HeroTitle:  "Finance Forward With Srinikethan!",
		AboutTitle: "Financial Coach, Educator, & Author",
		AboutContent: "I'm Srinikethan, Founder & CEO of my financial consulting firm, on a mission since 2009 to help " +
			"professionals and families take control of their finances. With over 15 years of experience, I simplify " +
			"financial management through actionable strategies, interactive workshops, and one-on-one consultations, " +
			"empowering clients to optimize investments, plan for retirement, and build lasting wealth.\n\n" +
			"My journey began with personal financial setbacks that taught me the value of informed decision-making, " +
			"and today, I use those lessons to guide others through India's complex financial landscape. If you're ready " +
			"to transform your relationship with money and achieve your goals with clarity and confidence, let's connect.",
	}
}

// HomePage holds the editable copy of the landing page.
type HomePage struct {
	SingletonModel

	WelcomeTitle    string `gorm:"size:200" json:"welcomeTitle"`
	WelcomeSubtitle string `gorm:"type:text" json:"welcomeSubtitle"`
	ProfilePhoto    string `gorm:"size:255" json:"profilePhoto"`

	PhilosophyTitle      string `gorm:"size:200" json:"philosophyTitle"`
	PhilosophySubtitle   string `gorm:"size:300" json:"philosophySubtitle"`
	PhilosophyHighlight1 string `gorm:"column:philosophy_highlight_1;size:100" json:"philosophyHighlight1"`
	PhilosophyHighlight2 string `gorm:"column:philosophy_highlight_2;size:100" json:"philosophyHighlight2"`
	PhilosophyHighlight3 string `gorm:"column:philosophy_highlight_3;size:100" json:"philosophyHighlight3"`
	PhilosophyHighlight4 string `gorm:"column:philosophy_highlight_4;size:100" json:"philosophyHighlight4"`

	ExpertiseTitle    string `gorm:"size:200" json:"expertiseTitle"`
	ExpertiseSubtitle string `gorm:"type:text" json:"expertiseSubtitle"`

	SuccessStoriesTitle    string `gorm:"size:200" json:"successStoriesTitle"`
	SuccessStoriesSubtitle string `gorm:"type:text" json:"successStoriesSubtitle"`

	KnowledgeHubTitle    string `gorm:"size:200" json:"knowledgeHubTitle"`
	KnowledgeHubSubtitle string `gorm:"type:text" json:"knowledgeHubSubtitle"`

	PrimaryCTAText   string `gorm:"column:primary_cta_text;size:50" json:"primaryCtaText"`
	PrimaryCTAURL    string `gorm:"column:primary_cta_url;size:200" json:"primaryCtaUrl"`
	SecondaryCTAText string `gorm:"column:secondary_cta_text;size:50" json:"secondaryCtaText"`
	SecondaryCTAURL  string `gorm:"column:secondary_cta_url;size:200" json:"secondaryCtaUrl"`
}

func (HomePage) TableName() string { return "home_pages" }

// PhilosophyHighlights returns the non-empty highlight labels in display order.
func (h HomePage) PhilosophyHighlights() []string {
	return nonEmpty(h.PhilosophyHighlight1, h.PhilosophyHighlight2, h.PhilosophyHighlight3, h.PhilosophyHighlight4)
}

// DefaultHomePage returns the seed landing page copy.
func DefaultHomePage() HomePage {
	return HomePage{
		WelcomeTitle:           "Your Financial Growth Partner",
		WelcomeSubtitle:        "Empowering you to achieve financial independence through smart planning and strategic growth.",
		PhilosophyTitle:        "My Philosophy",
		PhilosophySubtitle:     "Building wealth is not about luck. It's about having the right strategy, consistent execution, and a trusted guide.",
		PhilosophyHighlight1:   "Personalized Strategies",
		PhilosophyHighlight2:   "Data-Driven Insights",
		PhilosophyHighlight3:   "Long-term Success",
		PhilosophyHighlight4:   "Continuous Support",
		ExpertiseTitle:         "Expertise Areas",
		ExpertiseSubtitle:      "Comprehensive financial solutions tailored to your unique goals and circumstances.",
		SuccessStoriesTitle:    "Success Stories",
		SuccessStoriesSubtitle: "Real transformations from clients who trusted the journey.",
		KnowledgeHubTitle:      "Knowledge Hub",
		KnowledgeHubSubtitle:   "Latest insights, strategies, and market perspectives to keep you informed.",
		PrimaryCTAText:         "Start Your Journey",
		PrimaryCTAURL:          "/contact/",
		SecondaryCTAText:       "Explore Expertise",
		SecondaryCTAURL:        "#expertise",
	}
}

// MyStory holds the "My Story" page: an introduction, four timeline chapters and a mission statement.
type MyStory struct {
	SingletonModel

	PageTitle    string `gorm:"size:200" json:"pageTitle"`
	PageSubtitle string `gorm:"type:text" json:"pageSubtitle"`
	IntroText    string `gorm:"type:text" json:"introText"`

	Chapter1Number  string `gorm:"column:chapter_1_number;size:10" json:"chapter1Number"`
	Chapter1Title   string `gorm:"column:chapter_1_title;size:100" json:"chapter1Title"`
	Chapter1Period  string `gorm:"column:chapter_1_period;size:50" json:"chapter1Period"`
	Chapter1Content string `gorm:"column:chapter_1_content;type:text" json:"chapter1Content"`

	Chapter2Number  string `gorm:"column:chapter_2_number;size:10" json:"chapter2Number"`
	Chapter2Title   string `gorm:"column:chapter_2_title;size:100" json:"chapter2Title"`
	Chapter2Period  string `gorm:"column:chapter_2_period;size:50" json:"chapter2Period"`
	Chapter2Content string `gorm:"column:chapter_2_content;type:text" json:"chapter2Content"`

	Chapter3Number  string `gorm:"column:chapter_3_number;size:10" json:"chapter3Number"`
	Chapter3Title   string `gorm:"column:chapter_3_title;size:100" json:"chapter3Title"`
	Chapter3Period  string `gorm:"column:chapter_3_period;size:50" json:"chapter3Period"`
	Chapter3Content string `gorm:"column:chapter_3_content;type:text" json:"chapter3Content"`

	Chapter4Number  string `gorm:"column:chapter_4_number;size:10" json:"chapter4Number"`
	Chapter4Title   string `gorm:"column:chapter_4_title;size:100" json:"chapter4Title"`
	Chapter4Period  string `gorm:"column:chapter_4_period;size:50" json:"chapter4Period"`
	Chapter4Content string `gorm:"column:chapter_4_content;type:text" json:"chapter4Content"`

	MissionTitle string `gorm:"size:200" json:"missionTitle"`
	MissionText  string `gorm:"type:text" json:"missionText"`
	PersonalNote string `gorm:"type:text" json:"personalNote"`
}

func (MyStory) TableName() string { return "my_stories" }

// StoryChapter is one entry of the My Story timeline.
type StoryChapter struct {
	Number  string
	Title   string
	Period  string
	Content string
}

// Chapters returns the timeline, skipping chapters without a title.
func (m MyStory) Chapters() []StoryChapter {
	all := []StoryChapter{
		{Number: m.Chapter1Number, Title: m.Chapter1Title, Period: m.Chapter1Period, Content: m.Chapter1Content},
		{Number: m.Chapter2Number, Title: m.Chapter2Title, Period: m.Chapter2Period, Content: m.Chapter2Content},
		{Number: m.Chapter3Number, Title: m.Chapter3Title, Period: m.Chapter3Period, Content: m.Chapter3Content},
		{Number: m.Chapter4Number, Title: m.Chapter4Title, Period: m.Chapter4Period, Content: m.Chapter4Content},
	}
	chapters := make([]StoryChapter, 0, len(all))
	for _, chapter := range all {
		if chapter.Title != "" {
			chapters = append(chapters, chapter)
		}
	}
	return chapters
}

// DefaultMyStory returns the seed My Story copy.
func DefaultMyStory() MyStory {
	return MyStory{
		PageTitle:    "My Story",
		PageSubtitle: "Every great journey begins with a single step. Here's how my passion for financial empowerment began.",
		IntroText: "My path to becoming a financial growth partner wasn't traditional, but it was authentic. Each chapter " +
			"of my life has shaped my understanding of what it truly means to achieve financial independence.",

		Chapter1Number:  "01",
		Chapter1Title:   "Early Foundation",
		Chapter1Period:  "2010-2014",
		Chapter1Content: "Started my journey understanding the basics of personal finance and investment principles.",

		Chapter2Number:  "02",
		Chapter2Title:   "Professional Growth",
		Chapter2Period:  "2015-2018",
		Chapter2Content: "Developed expertise in financial planning while helping others achieve their goals.",

		Chapter3Number:  "03",
		Chapter3Title:   "Market Expertise",
		Chapter3Period:  "2019-2022",
		Chapter3Content: "Navigated market volatility and economic challenges, refining strategies for sustainable growth.",

		Chapter4Number:  "04",
		Chapter4Title:   "Today & Beyond",
		Chapter4Period:  "2023-Present",
		Chapter4Content: "Continuing to innovate and guide clients toward financial independence with proven strategies.",

		MissionTitle: "Mission & Vision",
		MissionText: "My mission is simple: to democratize financial growth and make wealth-building strategies " +
			"accessible to everyone, regardless of their starting point.",
		PersonalNote: "When I'm not analyzing markets or developing strategies, you'll find me reading, traveling, " +
			"or exploring new technologies that can enhance financial planning.",
	}
}

// InsightsPage holds the copy of the insights landing page.
type InsightsPage struct {
	SingletonModel

	PageTitle    string `gorm:"size:200" json:"pageTitle"`
	PageSubtitle string `gorm:"type:text" json:"pageSubtitle"`

	HeroTitle       string `gorm:"size:300" json:"heroTitle"`
	HeroDescription string `gorm:"type:text" json:"heroDescription"`

	FeaturedTitle    string `gorm:"size:200" json:"featuredTitle"`
	FeaturedExcerpt  string `gorm:"type:text" json:"featuredExcerpt"`
	FeaturedContent  string `gorm:"type:text" json:"featuredContent"`
	FeaturedImageAlt string `gorm:"size:200" json:"featuredImageAlt"`

	QuickInsightsTitle string `gorm:"size:200" json:"quickInsightsTitle"`
	Insight1Title      string `gorm:"column:insight_1_title;size:150" json:"insight1Title"`
	Insight1Content    string `gorm:"column:insight_1_content;type:text" json:"insight1Content"`
	Insight2Title      string `gorm:"column:insight_2_title;size:150" json:"insight2Title"`
	Insight2Content    string `gorm:"column:insight_2_content;type:text" json:"insight2Content"`
	Insight3Title      string `gorm:"column:insight_3_title;size:150" json:"insight3Title"`
	Insight3Content    string `gorm:"column:insight_3_content;type:text" json:"insight3Content"`
	Insight4Title      string `gorm:"column:insight_4_title;size:150" json:"insight4Title"`
	Insight4Content    string `gorm:"column:insight_4_content;type:text" json:"insight4Content"`

	NewsletterTitle       string `gorm:"size:200" json:"newsletterTitle"`
	NewsletterDescription string `gorm:"type:text" json:"newsletterDescription"`

	CTATitle       string `gorm:"column:cta_title;size:200" json:"ctaTitle"`
	CTADescription string `gorm:"column:cta_description;type:text" json:"ctaDescription"`
	CTAButtonText  string `gorm:"column:cta_button_text;size:50" json:"ctaButtonText"`
	CTAButtonURL   string `gorm:"column:cta_button_url;size:200" json:"ctaButtonUrl"`
}

func (InsightsPage) TableName() string { return "insights_pages" }

// QuickInsight is one card of the quick insights grid.
type QuickInsight struct {
	Title   string
	Content string
}

func (p InsightsPage) QuickInsights() []QuickInsight {
	all := []QuickInsight{
		{Title: p.Insight1Title, Content: p.Insight1Content},
		{Title: p.Insight2Title, Content: p.Insight2Content},
		{Title: p.Insight3Title, Content: p.Insight3Content},
		{Title: p.Insight4Title, Content: p.Insight4Content},
	}
	insights := make([]QuickInsight, 0, len(all))
	for _, insight := range all {
		if insight.Title != "" {
			insights = append(insights, insight)
		}
	}
	return insights
}

// DefaultInsightsPage returns the seed insights page copy.
func DefaultInsightsPage() InsightsPage {
	return InsightsPage{
		PageTitle:    "Financial Insights",
		PageSubtitle: "Expert analysis, market trends, and strategic insights to enhance your financial journey.",

		HeroTitle: "Navigate Markets with Confidence",
		HeroDescription: "Stay ahead of market trends with expert analysis, actionable insights, and proven strategies " +
			"that drive real financial growth.",

		FeaturedTitle: "Market Outlook 2024",
		FeaturedExcerpt: "Understanding the key economic indicators and investment opportunities that will shape the " +
			"financial landscape this year.",
		FeaturedContent:  "The financial markets are experiencing unprecedented shifts...",
		FeaturedImageAlt: "Market analysis chart",

		QuickInsightsTitle: "Quick Market Insights",
		Insight1Title:      "Diversification Strategies",
		Insight1Content:    "Learn how to spread risk across different asset classes for more stable long-term returns.",
		Insight2Title:      "Tax Optimization Tips",
		Insight2Content:    "Maximize your after-tax returns with strategic planning and smart investment timing.",
		Insight3Title:      "Economic Indicators",
		Insight3Content:    "Key metrics to watch that signal market direction and investment opportunities.",
		Insight4Title:      "Risk Management",
		Insight4Content:    "Protect your portfolio with proven risk assessment and mitigation strategies.",

		NewsletterTitle: "Stay Updated",
		NewsletterDescription: "Get weekly insights delivered to your inbox. Market analysis, investment tips, and " +
			"exclusive strategies.",

		CTATitle:       "Ready to Apply These Insights?",
		CTADescription: "Transform market knowledge into personal wealth. Let's discuss your financial strategy.",
		CTAButtonText:  "Schedule Consultation",
		CTAButtonURL:   "/contact/",
	}
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
