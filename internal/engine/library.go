package engine

// LibraryEntry is one psychoeducation article shown in the reading
// library. Entries are static content, never persisted with the state.
type LibraryEntry struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

const (
	LibraryCategoryIFS            = "IFS"
	LibraryCategorySpecificParts  = "Specific Parts"
	LibraryCategorySelfCompassion = "Self-Compassion"
)

// LibraryCatalog returns the static article catalog in reading order.
func LibraryCatalog() []LibraryEntry {
	return []LibraryEntry{
		{
			Title:    "What is Internal Family Systems (IFS)?",
			Category: LibraryCategoryIFS,
			Content:  "Internal Family Systems is a way of understanding the different \"voices\" or \"parts\" you experience inside yourself. Rather than seeing inner conflict as a problem to fix, IFS recognizes that we all have different parts of ourselves—each with its own perspective, feelings, and concerns. Think of how you might feel one way in the morning (motivated, organized) and completely different by evening (exhausted, self-critical). These aren't mood swings; they're different parts of you trying to help in their own way. IFS helps you get to know these parts, understand what they're trying to protect you from, and learn to work with them rather than against them.",
		},
		{
			Title:    "Parts",
			Category: LibraryCategoryIFS,
			Content:  "In IFS, a \"part\" is more than just a thought, feeling, or mood—it's like a distinct subpersonality within you, with its own perspective, emotions, memories, and way of trying to help. You might notice a part through its voice in your head (\"You're going to mess this up\"), through a feeling that takes over (sudden anxiety or numbness), or through behaviors that seem to happen automatically (procrastinating, snapping at someone, reaching for your phone). Parts often feel like they have a mind of their own because, in a way, they do. The good news? Having parts is completely normal—everyone has them. They developed to help you navigate difficult experiences, and while their methods might not always work well now, each part has a positive intent underneath. When you learn to recognize and communicate with your parts, you can start to understand what they need and help them find better ways to support you.",
		},
		{
			Title:    "Managers",
			Category: LibraryCategorySpecificParts,
			Content:  "Managers are the parts of you that try to keep everything under control and prevent bad things from happening. They're proactive protectors—always planning, organizing, and working to make sure you don't get hurt, rejected, or overwhelmed. Common managers include your inner critic (keeping you in line so others won't criticize you), your perfectionist (making sure you're never caught off guard), or your people-pleaser (preventing conflict or rejection). You might notice a manager when you're lying awake at night making mental to-do lists, when you're over-preparing for a meeting, or when you can't stop yourself from checking your work one more time. Managers mean well—they're trying to protect you from pain—but they can be exhausting to live with.",
		},
		{
			Title:    "Firefighters",
			Category: LibraryCategorySpecificParts,
			Content:  "Firefighters are the parts that jump into action when you're already feeling overwhelmed, hurt, or flooded with difficult emotions. Unlike managers who try to prevent problems, firefighters respond to emergencies by doing whatever it takes to make the pain stop right now. They might show up as impulses to binge-watch TV when you're stressed, reach for another drink when you're lonely, pick a fight when you're feeling vulnerable, or scroll social media for hours when you should be sleeping. They can also appear as dissociation, numbing out, or sudden rage. Firefighters get a bad reputation because their methods can be destructive, but they're actually trying to rescue you from unbearable feelings. They're just working with limited tools and a sense of urgency.",
		},
		{
			Title:    "Exiles",
			Category: LibraryCategorySpecificParts,
			Content:  "Exiles are the parts of you that carry old pain, trauma, or overwhelming emotions from the past—often from childhood. These parts hold feelings like shame, terror, abandonment, or worthlessness that felt too big to handle at the time. Your system \"exiled\" them (pushed them away) to protect you from being overwhelmed. You might not be consciously aware of your exiles, but you'll notice their influence: sudden waves of sadness that seem out of proportion, a visceral fear of rejection, or feeling small and powerless in certain situations. Exiles are often young—they're a part of your past, still experiencing old wounds as if they're happening now. Both managers and firefighters work hard to keep exiles locked away, but the exiles' pain inevitably leaks out, driving much of our reactive behavior.",
		},
		{
			Title:    "The Self",
			Category: LibraryCategoryIFS,
			Content:  "In IFS, \"Self\" isn't just another part—it's who you are at your core. It's the calm, grounded, compassionate presence that exists underneath all your parts. You've experienced Self when you feel genuinely curious about something, when you respond to a crisis with unexpected clarity, when you feel deep compassion for someone (including yourself), or when you access a sense of courage you didn't know you had. Self is characterized by qualities like curiosity, calm, clarity, compassion, confidence, courage, creativity, and connectedness. The revolutionary idea in IFS is that everyone has Self—it can never be damaged or destroyed, only obscured by protective parts. When your parts trust you and step back, even a little, Self naturally emerges. The goal of IFS isn't to get rid of parts or fix yourself; it's to let Self lead, with all your parts learning they can relax and trust your core wisdom.",
		},
		{
			Title:    "How IFS Works",
			Category: LibraryCategoryIFS,
			Content:  "IFS works by helping you develop a relationship between your Self and your parts. Instead of trying to suppress difficult feelings or force yourself to change, you start by getting curious about the parts that are showing up. When a part is activated—say, anxiety about an upcoming presentation—you pause and notice it, rather than pushing it away or becoming completely consumed by it. You might ask internally: \"What are you worried about?\" or \"What do you need me to know?\" As you listen with genuine curiosity and compassion (from Self), parts begin to trust you and share their deeper concerns. Often, you'll discover that even the most difficult parts are trying to protect you from old pain carried by exiles. As parts feel heard and valued, they naturally relax their extreme roles. Over time, you can help exiles heal from their old wounds (a process called \"unburdening\"), which allows all your protective parts to step into healthier roles. The result is greater internal harmony and Self-leadership in your life.",
		},
		{
			Title:    "Applying IFS to Daily Life",
			Category: LibraryCategoryIFS,
			Content:  "You don't need to be in therapy to benefit from IFS thinking. Start by simply noticing when you're \"blended\" with a part—when you're completely identified with anxiety, criticism, numbness, or any intense reaction. In those moments, see if you can create a little space: \"A part of me is really anxious right now\" rather than \"I am anxious.\" This small shift helps you access Self. When you're stuck in a pattern—procrastinating, people-pleasing, picking the same fights—get curious about which part is driving that behavior and what it's trying to protect you from. You might journal from different parts' perspectives, or simply pause during your day to check in: \"Which parts are active right now? What do they need?\" Over time, you'll start recognizing your parts' signatures—the perfectionist who makes you rewrite emails five times, the rebel who emerges when you feel controlled, the caretaker who can't say no. Once you know them, you can work with them: \"I hear you, perfectionist. I know you're trying to keep me safe from criticism. But I've got this—it doesn't need to be perfect.\" This internal collaboration, rather than internal warfare, is what IFS is all about.",
		},
		{
			Title:    "What is Self-Compassion?",
			Category: LibraryCategorySelfCompassion,
			Content:  "Self-compassion is the practice of treating yourself with the same kindness and understanding you'd offer a good friend who's struggling. It means acknowledging your pain without judgment, recognizing that imperfection and difficulty are part of being human, and responding to yourself with warmth rather than criticism. Instead of beating yourself up when you make a mistake or feel inadequate, self-compassion asks: \"What do I need right now? How can I support myself through this?\" It's not about lowering standards or making excuses—it's about creating a supportive inner environment where growth and healing are actually possible. Research shows that self-compassion leads to greater emotional resilience, motivation, and wellbeing than self-criticism ever could.",
		},
	}
}

// LibraryByCategory filters the catalog. An empty category returns
// everything; unknown categories return an empty, non-nil slice.
func LibraryByCategory(category string) []LibraryEntry {
	all := LibraryCatalog()
	if category == "" {
		return all
	}
	out := make([]LibraryEntry, 0, len(all))
	for _, e := range all {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
