package chat

// Rule pairs a set of trigger keywords with a fixed response payload.
// Keywords are lowercase and matched by substring containment.
type Rule struct {
	Name        string
	Keywords    []string
	Reply       string
	Suggestions []string
}

// defaultRule answers utterances that match no rule in the table
var defaultRule = Rule{
	Name: "default",
	Reply: "I hear you, and I appreciate you sharing that with me. Every student's experience is unique, " +
		"and whatever you're going through is valid. While I'm here to offer support and resources, " +
		"remember that you're not alone in this journey. Is there a particular area where you'd like some guidance or support?",
	Suggestions: []string{
		"Help with stress management",
		"I need study support",
		"Show me relaxation techniques",
		"I want to improve my mood",
	},
}

// defaultRules is evaluated in order and the first matching rule wins.
// Several rules can match one utterance, so the order is part of the contract.
var defaultRules = []Rule{
	{
		Name:     "stress",
		Keywords: []string{"stress", "anxious", "worried"},
		Reply: "I understand you're feeling stressed. That's completely normal, especially as a student. " +
			"Stress can feel overwhelming, but there are gentle ways to manage it. Would you like to try a quick " +
			"breathing exercise, or would you prefer to talk about what's causing the stress?",
		Suggestions: []string{
			"Show me breathing exercises",
			"I want to talk about what's stressing me",
			"Help me with study stress",
			"I need relaxation techniques",
		},
	},
	{
		Name:     "sleep",
		Keywords: []string{"sleep", "tired", "insomnia"},
		Reply: "Sleep troubles can really affect how we feel during the day. Many students struggle with sleep, " +
			"whether it's from stress, irregular schedules, or racing thoughts. Creating a calming bedtime routine " +
			"can help. Have you tried any relaxation techniques before bed?",
		Suggestions: []string{
			"Tell me about sleep hygiene",
			"I have racing thoughts at night",
			"Show me bedtime relaxation",
			"Help with sleep schedule",
		},
	},
	{
		Name:     "motivation",
		Keywords: []string{"motivation", "unmotivated", "lazy"},
		Reply: "Feeling unmotivated happens to everyone, and it doesn't mean anything is wrong with you. " +
			"Sometimes our minds need rest, or we might be overwhelmed. Small steps can help rebuild momentum. " +
			"What's one tiny thing you could do today that would make you feel a little accomplished?",
		Suggestions: []string{
			"Help me set small goals",
			"I'm overwhelmed with tasks",
			"Show me motivation techniques",
			"I need study motivation",
		},
	},
	{
		Name:     "mood",
		Keywords: []string{"sad", "depressed", "down"},
		Reply: "I'm sorry you're feeling down. Your feelings are valid, and it's okay to have difficult days. " +
			"While I can offer support and resources, if you're consistently feeling this way, it might help to talk " +
			"to a counselor or trusted friend. In the meantime, would you like some gentle activities that might help lift your mood?",
		Suggestions: []string{
			"Show me mood-lifting activities",
			"I want to talk to someone",
			"Help me with self-care",
			"I need professional help resources",
		},
	},
	{
		Name:     "breathing",
		Keywords: []string{"breathing", "breathe"},
		Reply: "Breathing exercises are wonderful for calming the mind and body! They're simple but powerful. " +
			"I'd recommend starting with the 4-7-8 technique: breathe in for 4, hold for 7, exhale for 8. " +
			"You can find guided breathing exercises in our Exercise section. Would you like me to walk you through a quick one?",
		Suggestions: []string{
			"Guide me through breathing now",
			"Show me different breathing techniques",
			"I want longer breathing exercises",
			"Help with panic breathing",
		},
	},
	{
		Name:     "study",
		Keywords: []string{"study", "exam", "school"},
		Reply: "Academic pressure can be really challenging! Remember that your worth isn't defined by grades. " +
			"Taking regular breaks, staying organized, and managing stress are just as important as studying. " +
			"What aspect of your studies is feeling most overwhelming right now?",
		Suggestions: []string{
			"Help with study stress",
			"I need break ideas",
			"Show me focus techniques",
			"Help with exam anxiety",
		},
	},
	{
		Name:     "social",
		Keywords: []string{"friend", "social", "lonely"},
		Reply: "Social connections are so important for our wellbeing. Feeling lonely or having social challenges " +
			"is more common than you might think, especially in student life. Building relationships takes time, " +
			"and it's okay to start small. Are you looking to make new connections or work on existing relationships?",
		Suggestions: []string{
			"Help with making friends",
			"I feel lonely at school",
			"Social anxiety tips",
			"Building confidence socially",
		},
	},
	{
		Name:     "gratitude",
		Keywords: []string{"thank", "thanks"},
		Reply: "You're so welcome! I'm here whenever you need support or just want to chat. Remember, taking care " +
			"of your mental health is a sign of strength, not weakness. You're doing great by reaching out and using these resources.",
		Suggestions: []string{
			"Tell me about other services",
			"I want to try music therapy",
			"Show me stress check tool",
			"Help me create a wellness routine",
		},
	},
	{
		Name:     "music",
		Keywords: []string{"music", "relax"},
		Reply: "Music can be incredibly healing! Our music therapy section has curated playlists for different moods " +
			"and needs - from focus music to sleep sounds to guided meditations. Different types of music can help with " +
			"different situations. What kind of mood are you hoping to create?",
		Suggestions: []string{
			"Show me calming music",
			"I need focus music",
			"Help me sleep with music",
			"Guided meditation sounds good",
		},
	},
	{
		Name:     "exercise",
		Keywords: []string{"exercise", "yoga", "movement"},
		Reply: "Movement is fantastic for mental health! Even gentle exercises like stretching or short walks can help " +
			"reduce stress and improve mood. Our exercise section has everything from breathing techniques to yoga flows. " +
			"You don't need to be athletic - it's all about what feels good for your body.",
		Suggestions: []string{
			"Show me gentle exercises",
			"I want to try yoga",
			"Quick stress-relief movements",
			"Exercises for study breaks",
		},
	},
	{
		Name:     "greeting",
		Keywords: []string{"hello", "hi", "hey"},
		Reply: "Hello! It's lovely to meet you. I'm here to provide a supportive space where you can share what's on " +
			"your mind, get resources for managing stress, or just have a friendly conversation. There's no judgment " +
			"here - just support. How are you doing today?",
		Suggestions: []string{
			"I'm feeling stressed",
			"I need help sleeping",
			"Show me your services",
			"I just want to chat",
		},
	},
}
