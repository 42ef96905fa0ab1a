// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package content

import "github.com/AccelByte/heartsim/pkg/stats"

// Default returns the built-in game catalog.
func Default() *Catalog {
	return &Catalog{
		Activities:       defaultActivities(),
		Personalities:    defaultPersonalities(),
		Partners:         defaultPartners(),
		Scenarios:        defaultScenarios(),
		Events:           defaultEvents(),
		InitialStats:     stats.Stats{Wealth: 30, Strength: 35, Looks: 40, Intelligence: 45, Education: 35, Health: 50},
		InitialAffection: 10,
	}
}

func defaultActivities() []Activity {
	return []Activity{
		{
			ID:          "work",
			Name:        "Work Overtime",
			Description: "Put in extra hours to earn more money",
			Icon:        "💼",
			StatChanges: map[stats.Key]int{
				stats.Wealth:   8,
				stats.Health:   -3,
				stats.Strength: -2,
			},
			StabilityChange: 5,
			Duration:        1,
		},
		{
			ID:          "gym",
			Name:        "Hit the Gym",
			Description: "Build strength and improve your physique",
			Icon:        "🏋️",
			StatChanges: map[stats.Key]int{
				stats.Strength: 6,
				stats.Health:   4,
				stats.Looks:    3,
			},
			StabilityChange: 3,
			Duration:        1,
		},
		{
			ID:          "study",
			Name:        "Study & Learn",
			Description: "Expand your knowledge and credentials",
			Icon:        "📚",
			StatChanges: map[stats.Key]int{
				stats.Intelligence: 5,
				stats.Education:    7,
			},
			StabilityChange: 4,
			Duration:        1,
		},
		{
			ID:          "spa",
			Name:        "Self-Care Day",
			Description: "Pamper yourself and boost your appearance",
			Icon:        "✨",
			StatChanges: map[stats.Key]int{
				stats.Looks:  8,
				stats.Health: 3,
				stats.Wealth: -5,
			},
			StabilityChange: 2,
			Duration:        1,
		},
		{
			ID:          "meditate",
			Name:        "Meditation",
			Description: "Find inner peace and mental clarity",
			Icon:        "🧘",
			StatChanges: map[stats.Key]int{
				stats.Intelligence: 3,
				stats.Health:       5,
			},
			StabilityChange: 8,
			Duration:        1,
		},
		{
			ID:          "invest",
			Name:        "Invest Wisely",
			Description: "Grow your wealth through smart investments",
			Icon:        "📈",
			StatChanges: map[stats.Key]int{
				stats.Wealth:       12,
				stats.Intelligence: 2,
			},
			StabilityChange: 6,
			Duration:        1,
		},
	}
}

func defaultPersonalities() []Personality {
	return []Personality{
		{
			ID:          "ambitious",
			Name:        "Ambitious",
			Description: "Values success and hard work",
			Preferences: stats.Weights{
				stats.Wealth:       0.3,
				stats.Intelligence: 0.3,
				stats.Education:    0.2,
				stats.Looks:        0.1,
				stats.Strength:     0.05,
				stats.Health:       0.05,
			},
		},
		{
			ID:          "athletic",
			Name:        "Athletic",
			Description: "Loves fitness and outdoor activities",
			Preferences: stats.Weights{
				stats.Strength:     0.35,
				stats.Health:       0.35,
				stats.Looks:        0.15,
				stats.Wealth:       0.05,
				stats.Intelligence: 0.05,
				stats.Education:    0.05,
			},
		},
		{
			ID:          "intellectual",
			Name:        "Intellectual",
			Description: "Appreciates deep conversations and learning",
			Preferences: stats.Weights{
				stats.Intelligence: 0.35,
				stats.Education:    0.35,
				stats.Health:       0.1,
				stats.Wealth:       0.1,
				stats.Looks:        0.05,
				stats.Strength:     0.05,
			},
		},
		{
			ID:          "balanced",
			Name:        "Balanced",
			Description: "Values overall stability and well-roundedness",
			Preferences: stats.Weights{
				stats.Wealth:       0.17,
				stats.Strength:     0.17,
				stats.Looks:        0.17,
				stats.Intelligence: 0.17,
				stats.Education:    0.16,
				stats.Health:       0.16,
			},
		},
	}
}

func defaultPartners() []PotentialPartner {
	return []PotentialPartner{
		{
			ID:                "jordan",
			Name:              "Jordan",
			Avatar:            "🧑‍💼",
			Age:               28,
			Bio:               "Startup founder who never stops moving. Looking for someone who gets the grind.",
			PersonalityID:     "ambitious",
			Traits:            []string{"Driven", "Organized", "Night owl"},
			CompatibilityHint: "Impressed by wealth and smarts",
		},
		{
			ID:                "sam",
			Name:              "Sam",
			Avatar:            "🏃",
			Age:               26,
			Bio:               "Trail runner and weekend climber. Let's race to the summit.",
			PersonalityID:     "athletic",
			Traits:            []string{"Energetic", "Outdoorsy", "Early riser"},
			CompatibilityHint: "Loves strength and vitality",
		},
		{
			ID:                "avery",
			Name:              "Avery",
			Avatar:            "🧑‍🏫",
			Age:               30,
			Bio:               "Librarian by day, essayist by night. Ask me about my bookshelf.",
			PersonalityID:     "intellectual",
			Traits:            []string{"Curious", "Thoughtful", "Bookworm"},
			CompatibilityHint: "Values a sharp, learned mind",
		},
		{
			ID:                "riley",
			Name:              "Riley",
			Avatar:            "🧑‍🎨",
			Age:               27,
			Bio:               "A little bit of everything. Balance beats extremes.",
			PersonalityID:     "balanced",
			Traits:            []string{"Easygoing", "Steady", "Warm"},
			CompatibilityHint: "Drawn to well-rounded people",
		},
		{
			ID:                "casey",
			Name:              "Casey",
			Avatar:            "🧗",
			Age:               29,
			Bio:               "Gym at six, smoothie at seven. Consistency is my love language.",
			PersonalityID:     "athletic",
			Traits:            []string{"Disciplined", "Upbeat", "Competitive"},
			CompatibilityHint: "Loves strength and vitality",
		},
	}
}

func defaultScenarios() []DateScenario {
	return []DateScenario{
		{
			ID:                "coffee",
			Name:              "Coffee Date",
			Icon:              "☕",
			Description:       "A casual coffee meetup",
			RequiredAffection: 0,
			Dialogue: []DialogueLine{
				{Speaker: SpeakerPartner, Text: "So, tell me about yourself. What do you do for fun?"},
				{Speaker: SpeakerPlayer, Options: []DialogueOption{
					{Text: "I love staying active and hitting the gym!", Tags: []stats.Key{stats.Strength, stats.Health}, AffectionBonus: 2},
					{Text: "I'm really into reading and learning new things.", Tags: []stats.Key{stats.Intelligence, stats.Education}, AffectionBonus: 2},
					{Text: "Honestly, I'm focused on my career right now.", Tags: []stats.Key{stats.Wealth}, AffectionBonus: 1},
				}},
				{Speaker: SpeakerPartner, Text: "That's interesting! I appreciate someone who knows what they want."},
			},
		},
		{
			ID:                "dinner",
			Name:              "Fancy Dinner",
			Icon:              "🍽️",
			Description:       "An upscale restaurant experience",
			RequiredAffection: 20,
			Dialogue: []DialogueLine{
				{Speaker: SpeakerPartner, Text: "This place is lovely. Do you come here often?"},
				{Speaker: SpeakerPlayer, Options: []DialogueOption{
					{Text: "I know the owner actually. Connections matter!", Tags: []stats.Key{stats.Wealth, stats.Intelligence}, AffectionBonus: 3},
					{Text: "First time! I wanted to impress you.", Tags: []stats.Key{stats.Looks}, AffectionBonus: 4},
					{Text: "I read great reviews. I did my research.", Tags: []stats.Key{stats.Intelligence, stats.Education}, AffectionBonus: 2},
				}},
				{Speaker: SpeakerPartner, Text: "Well, I'm definitely impressed so far..."},
			},
		},
		{
			ID:                "hiking",
			Name:              "Hiking Adventure",
			Icon:              "🥾",
			Description:       "Explore nature together",
			RequiredAffection: 30,
			Dialogue: []DialogueLine{
				{Speaker: SpeakerPartner, Text: "Wow, this trail is beautiful! How are you holding up?"},
				{Speaker: SpeakerPlayer, Options: []DialogueOption{
					{Text: "I could do this all day! Want to race to the top?", Tags: []stats.Key{stats.Strength, stats.Health}, AffectionBonus: 4},
					{Text: "It's challenging but the view is worth it.", Tags: []stats.Key{stats.Health}, AffectionBonus: 3},
					{Text: "Let's take a break and enjoy the scenery.", Tags: []stats.Key{stats.Intelligence}, AffectionBonus: 2},
				}},
				{Speaker: SpeakerPartner, Text: "I love spending time in nature with you."},
			},
		},
		{
			ID:                "movie",
			Name:              "Movie Night",
			Icon:              "🎬",
			Description:       "Watch a film together",
			RequiredAffection: 40,
			Dialogue: []DialogueLine{
				{Speaker: SpeakerPartner, Text: "What genre should we watch tonight?"},
				{Speaker: SpeakerPlayer, Options: []DialogueOption{
					{Text: "How about a documentary? I love learning.", Tags: []stats.Key{stats.Intelligence, stats.Education}, AffectionBonus: 3},
					{Text: "Action movie! Something exciting.", Tags: []stats.Key{stats.Strength}, AffectionBonus: 2},
					{Text: "A romantic comedy - seems fitting.", Tags: []stats.Key{stats.Looks}, AffectionBonus: 4},
				}},
				{Speaker: SpeakerPartner, Text: "Perfect choice. I'll make the popcorn!"},
			},
		},
		{
			ID:                "commitment",
			Name:              "The Big Question",
			Icon:              "💍",
			Description:       "Take things to the next level",
			RequiredAffection: 80,
			Dialogue: []DialogueLine{
				{Speaker: SpeakerPartner, Text: "We've been through so much together. I feel like this is really special."},
				{Speaker: SpeakerPlayer, Options: []DialogueOption{
					{Text: "I feel the same. Will you be my partner officially?", Tags: nil, AffectionBonus: 20},
					{Text: "Let's keep things as they are for now.", Tags: nil, AffectionBonus: -10},
					{Text: "I've been thinking about our future too...", Tags: []stats.Key{stats.Intelligence}, AffectionBonus: 15},
				}},
				{Speaker: SpeakerPartner, Text: "This means everything to me..."},
			},
		},
	}
}

func defaultEvents() []RandomEvent {
	return []RandomEvent{
		{
			ID:          "surprise_bonus",
			Title:       "Surprise Bonus",
			Category:    "Career",
			Description: "Your manager hands you an unexpected bonus for last quarter's work. What do you do with it?",
			Type:        EventPositive,
			Choices: []RandomEventChoice{
				{
					Text:                "Put it all into savings",
					Risk:                RiskLow,
					Effects:             map[stats.Key]int{stats.Wealth: 8},
					AffectionChange:     0,
					StabilityMultiplier: 1.05,
				},
				{
					Text:                "Treat your partner to a weekend away",
					Risk:                RiskMedium,
					Effects:             map[stats.Key]int{stats.Wealth: -4, stats.Health: 3},
					AffectionChange:     5,
					StabilityMultiplier: 1.0,
				},
				{
					Text:                "Bet it on a hot stock tip",
					Risk:                RiskHigh,
					Effects:             map[stats.Key]int{stats.Wealth: 15, stats.Health: -2},
					AffectionChange:     -2,
					StabilityMultiplier: 0.9,
				},
			},
		},
		{
			ID:          "flu_season",
			Title:       "Flu Season",
			Category:    "Health",
			Description: "You wake up with a fever and a meeting-packed calendar.",
			Type:        EventNegative,
			Choices: []RandomEventChoice{
				{
					Text:                "Stay home and rest properly",
					Risk:                RiskLow,
					Effects:             map[stats.Key]int{stats.Health: 4, stats.Wealth: -3},
					AffectionChange:     1,
					StabilityMultiplier: 1.0,
				},
				{
					Text:                "Power through the work day",
					Risk:                RiskHigh,
					Effects:             map[stats.Key]int{stats.Wealth: 4, stats.Health: -8},
					AffectionChange:     -3,
					StabilityMultiplier: 0.85,
				},
			},
		},
		{
			ID:          "old_friend",
			Title:       "An Old Friend Calls",
			Category:    "Social",
			Description: "A college friend is in town for one night only and wants to catch up.",
			Type:        EventNeutral,
			Choices: []RandomEventChoice{
				{
					Text:                "Go out and relive the old days",
					Risk:                RiskMedium,
					Effects:             map[stats.Key]int{stats.Health: -3, stats.Wealth: -2},
					AffectionChange:     -1,
					StabilityMultiplier: 1.0,
				},
				{
					Text:                "Invite them over for a quiet dinner with your partner",
					Risk:                RiskLow,
					Effects:             map[stats.Key]int{stats.Wealth: -1},
					AffectionChange:     4,
					StabilityMultiplier: 1.05,
				},
			},
		},
		{
			ID:          "rent_hike",
			Title:       "Rent Hike",
			Category:    "Finance",
			Description: "Your landlord raises the rent starting next month.",
			Type:        EventNegative,
			Choices: []RandomEventChoice{
				{
					Text:                "Accept it and tighten the budget",
					Risk:                RiskLow,
					Effects:             map[stats.Key]int{stats.Wealth: -10},
					AffectionChange:     0,
					StabilityMultiplier: 0.95,
				},
				{
					Text:                "Negotiate hard for a smaller increase",
					Risk:                RiskMedium,
					Effects:             map[stats.Key]int{stats.Wealth: -5, stats.Intelligence: 2},
					AffectionChange:     0,
					StabilityMultiplier: 1.0,
				},
				{
					Text:                "Move somewhere cheaper across town",
					Risk:                RiskHigh,
					Effects:             map[stats.Key]int{stats.Wealth: 5, stats.Health: -4, stats.Looks: -2},
					AffectionChange:     -2,
					StabilityMultiplier: 0.85,
				},
			},
		},
		{
			ID:          "viral_post",
			Title:       "Your Post Goes Viral",
			Category:    "Social",
			Description: "A photo from your last hike is suddenly everywhere.",
			Type:        EventPositive,
			Choices: []RandomEventChoice{
				{
					Text:                "Enjoy the attention for a day, then log off",
					Risk:                RiskLow,
					Effects:             map[stats.Key]int{stats.Looks: 4},
					AffectionChange:     2,
					StabilityMultiplier: 1.0,
				},
				{
					Text:                "Chase the fame with daily content",
					Risk:                RiskHigh,
					Effects:             map[stats.Key]int{stats.Looks: 8, stats.Health: -4, stats.Education: -2},
					AffectionChange:     -3,
					StabilityMultiplier: 0.9,
				},
			},
		},
		{
			ID:          "night_class",
			Title:       "Evening Course Opens Up",
			Category:    "Education",
			Description: "A seat opened in that evening course you bookmarked months ago.",
			Type:        EventNeutral,
			Choices: []RandomEventChoice{
				{
					Text:                "Enroll and commit two nights a week",
					Risk:                RiskMedium,
					Effects:             map[stats.Key]int{stats.Education: 6, stats.Intelligence: 3, stats.Wealth: -4},
					AffectionChange:     -1,
					StabilityMultiplier: 1.0,
				},
				{
					Text:                "Pass this time",
					Risk:                RiskLow,
					Effects:             map[stats.Key]int{},
					AffectionChange:     0,
					StabilityMultiplier: 1.0,
				},
			},
		},
	}
}
