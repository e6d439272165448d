package generator

import (
	"fmt"
	"strings"
)

// FormalCaption applies the formal decision tree: location+date first (with
// percentage and price refinements), then percentage, price, tone branches,
// and finally a random pick among the generic templates.
func (g *Generator) FormalCaption(companyName, productName, description string, brand *Brand, tone ToneResult, info ParsedPromptInfo) string {
	values := brandKeyValue(brand)
	cleanDesc := strings.TrimSpace(description)

	switch {
	case info.Location != "" && info.Date != "":
		if info.Percentage != "" {
			return fmt.Sprintf("%s proudly presents %s. %s Join us in %s on %s and enjoy %s%% savings. This exclusive opportunity reflects our commitment to %s.",
				companyName, productName, cleanDesc, info.Location, info.Date, info.Percentage, values)
		}
		if info.Price != "" {
			return fmt.Sprintf("%s is pleased to introduce %s. %s Available in %s starting %s, priced at $%s. Experience our dedication to %s.",
				companyName, productName, cleanDesc, info.Location, info.Date, info.Price, values)
		}
		return fmt.Sprintf("%s invites you to discover %s. %s Join us in %s on %s. This milestone represents our ongoing commitment to %s.",
			companyName, productName, cleanDesc, info.Location, info.Date, values)
	case info.Percentage != "":
		if tone.Tone == ToneUrgent {
			return fmt.Sprintf("Important announcement from %s: %s is now available with %s%% savings. %s This limited opportunity reflects our dedication to providing exceptional value. We invite you to explore this offer today.",
				companyName, productName, info.Percentage, cleanDesc)
		}
		return fmt.Sprintf("%s is delighted to offer %s with an exclusive %s%% discount. %s This special promotion embodies our commitment to %s and our valued customers.",
			companyName, productName, info.Percentage, cleanDesc, values)
	case info.Price != "":
		return fmt.Sprintf("%s introduces %s, thoughtfully priced at $%s. %s This offering represents our dedication to delivering quality and %s to our community.",
			companyName, productName, info.Price, cleanDesc, values)
	case tone.Tone == ToneCelebratory:
		return fmt.Sprintf("%s is thrilled to unveil %s. %s This achievement marks a significant milestone in our journey toward %s. Thank you for being part of our story.",
			companyName, productName, cleanDesc, values)
	case tone.Tone == ToneInspirational:
		return fmt.Sprintf("%s presents %s, designed to inspire. %s We believe in the transformative power of %s to create meaningful impact in your life.",
			companyName, productName, cleanDesc, values)
	}

	templates := []string{
		fmt.Sprintf("%s is pleased to announce %s. %s This initiative embodies our steadfast commitment to %s and excellence.", companyName, productName, cleanDesc, values),
		fmt.Sprintf("Introducing %s from %s. %s We remain dedicated to %s and delivering exceptional experiences to our community.", productName, companyName, cleanDesc, values),
		fmt.Sprintf("%s proudly presents %s. %s This development reflects our vision for %s and our commitment to innovation.", companyName, productName, cleanDesc, values),
	}
	return templates[g.pick(len(templates))]
}

var casualEmojis = []string{"✨", "🎉", "🚀", "💫", "🔥", "⚡", "🌟"}

// CasualCaption applies the casual decision tree. Note its branch order
// differs from the formal one: percentage+date leads, then percentage alone,
// then location+date.
func (g *Generator) CasualCaption(companyName, productName, description string, brand *Brand, tone ToneResult, info ParsedPromptInfo) string {
	emoji := casualEmojis[g.pick(len(casualEmojis))]
	cleanDesc := strings.TrimSpace(description)

	switch {
	case info.Percentage != "" && info.Date != "":
		return fmt.Sprintf("Hey everyone! %s %s is dropping %s with a HUGE %s%% discount! %s This deal goes live on %s - you don't want to miss this! Who's ready? 🙌",
			emoji, companyName, productName, info.Percentage, cleanDesc, info.Date)
	case info.Percentage != "":
		return fmt.Sprintf("%s Big news from %s! We're offering %s at %s%% off! %s This is seriously good - grab it while you can! 🔥",
			emoji, companyName, productName, info.Percentage, cleanDesc)
	case info.Location != "" && info.Date != "":
		return fmt.Sprintf("Exciting update! %s %s is bringing %s to %s on %s! %s Can't wait to see you all there! Who's coming? 📍",
			emoji, companyName, productName, info.Location, info.Date, cleanDesc)
	case tone.Tone == ToneEnthusiastic:
		return fmt.Sprintf("%s This is SO exciting! %s just launched %s! %s We've been working on this for ages and can't wait for you to try it! What do you think? 💭",
			emoji, companyName, productName, cleanDesc)
	case tone.Tone == ToneUrgent:
		return fmt.Sprintf("⏰ Quick heads up! %s's %s is here! %s Trust us, you don't want to miss out on this one. Let us know what you think! 🙌",
			companyName, productName, cleanDesc)
	case tone.Tone == ToneCelebratory:
		return fmt.Sprintf("🎊 Celebration time! %s is thrilled to share %s with you all! %s This moment means everything to us. Drop a comment and let us know your thoughts! 💬",
			companyName, productName, cleanDesc)
	}

	templates := []string{
		fmt.Sprintf("Hey friends! %s %s just dropped %s! %s We're super proud of this one and think you're gonna love it. What are your first thoughts? 💬", emoji, companyName, productName, cleanDesc),
		fmt.Sprintf("%s Big reveal! Introducing %s from %s! %s This has been in the works and we're finally ready to share it with you! Tell us what you think! 🙌", emoji, productName, companyName, cleanDesc),
		fmt.Sprintf("Exciting news! %s %s is launching %s! %s Can't wait to hear what you all think about this! Share your feedback below! ✨", emoji, companyName, productName, cleanDesc),
	}
	return templates[g.pick(len(templates))]
}

// FunnyCaption applies the funny decision tree: percentage, urgent,
// celebratory, then a random generic template.
func (g *Generator) FunnyCaption(companyName, productName, description string, brand *Brand, tone ToneResult, info ParsedPromptInfo) string {
	cleanDesc := strings.TrimSpace(description)

	switch {
	case info.Percentage != "":
		return fmt.Sprintf("🚨 Alert! Alert! %s is literally giving away %s at %s%% off! %s (No, this isn't a drill, and yes, we're more excited than a kid in a candy store 🍭) Don't sleep on this one because we like you that much! 😎",
			companyName, productName, info.Percentage, cleanDesc)
	case tone.Tone == ToneUrgent:
		return fmt.Sprintf("⏰ BREAKING: %s just dropped %s and the internet is about to lose its mind! %s We're not saying it's going to change your life, but... okay yeah, we're totally saying that. Who's in? 🚀",
			companyName, productName, cleanDesc)
	case tone.Tone == ToneCelebratory:
		return fmt.Sprintf("🎉 Hold the phone! %s is launching %s and we're out here living our best life! %s Join the party because FOMO is real and you don't want it. Who's ready to celebrate? 🥳",
			companyName, productName, cleanDesc)
	}

	templates := []string{
		fmt.Sprintf("Plot twist nobody saw coming: %s just released %s! %s 🎬 We guarantee this is cooler than your favorite Netflix series. Ready to dive in?", companyName, productName, cleanDesc),
		fmt.Sprintf("Breaking news: %s introduces %s! %s 📢 (And nope, we didn't accidentally press send too early this time 😅) Actually super proud of this one! Who's in?", companyName, productName, cleanDesc),
		fmt.Sprintf("%s presents %s... because boring isn't in our vocabulary! %s 🎪 We promise this is way more interesting than scrolling through your ex's vacation photos. Let's go! 🚀", companyName, productName, cleanDesc),
	}
	return templates[g.pick(len(templates))]
}

var (
	formalCTAs = []string{
		"Visit our website to learn more about this initiative.",
		"Connect with our team to discover how this can benefit you.",
		"Register your interest through the link in our bio.",
		"Schedule a consultation to explore this opportunity.",
		"Download our comprehensive guide for detailed insights.",
	}

	casualCTAs = []string{
		"Check out the link in bio to learn more! 🔗",
		"Drop a comment and let us know what you think! 💬",
		"Share this with someone who needs to see it! 📲",
		"Follow for more updates coming soon! ✨",
		"DM %s to get started today! 💌",
		"Tag a friend who would love this! 👥",
	}

	funnyCTAs = []string{
		"Slide into our DMs - we don't bite! 😁",
		"Click the link before your coffee gets cold! ☕",
		"Your future self will thank you for clicking that link! 🚀",
		"Don't just scroll - double tap if you're in! ❤️",
		"Tag that friend who needs this in their life ASAP! 🎯",
	}
)

// CTAs selects call-to-action variations. Purchase, event, and launch intent
// keywords each map to a fixed triple; otherwise each style gets an
// independent random pick from its pool.
func (g *Generator) CTAs(companyName, description string) CTAVariations {
	lower := strings.ToLower(description)

	switch {
	case containsAny(lower, []string{"buy", "purchase", "order"}):
		return CTAVariations{
			Formal: "Visit our website to place your order today.",
			Casual: "Grab yours now - link in bio! 🛒",
			Funny:  "Your cart is empty and sad. Let's fix that! 🛍️",
		}
	case containsAny(lower, []string{"event", "webinar", "workshop"}):
		return CTAVariations{
			Formal: "Register for this event through the link provided.",
			Casual: "Save your spot - link in bio! 🎟️",
			Funny:  "RSVP before all the cool kids take the spots! 🎉",
		}
	case containsAny(lower, []string{"launch", "release", "announcing"}):
		return CTAVariations{
			Formal: "Be among the first to experience this innovation.",
			Casual: "Get early access - link in bio! ✨",
			Funny:  "Join the hype train before it leaves the station! 🚂",
		}
	}

	formal := formalCTAs[g.pick(len(formalCTAs))]
	casual := casualCTAs[g.pick(len(casualCTAs))]
	if strings.Contains(casual, "%s") {
		casual = fmt.Sprintf(casual, companyName)
	}
	funny := funnyCTAs[g.pick(len(funnyCTAs))]

	return CTAVariations{Formal: formal, Casual: casual, Funny: funny}
}
