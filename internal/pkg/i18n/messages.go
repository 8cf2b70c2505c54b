package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type entry struct {
	en string
	bn string
}

var uiMessages = map[string]entry{
	"site.title":           {"National Elections Inquiry Commission", "জাতীয় নির্বাচন তদন্ত কমিশন"},
	"nav.home":             {"Home", "প্রচ্ছদ"},
	"nav.commission":       {"Commission", "কমিশন"},
	"nav.members":          {"Members", "সদস্যবৃন্দ"},
	"nav.blog":             {"Blog", "ব্লগ"},
	"nav.privacy":          {"Privacy Policy", "গোপনীয়তা নীতি"},
	"nav.login":            {"Sign in", "লগইন"},
	"nav.logout":           {"Sign out", "লগআউট"},
	"nav.dashboard":        {"Dashboard", "ড্যাশবোর্ড"},
	"lang.label":           {"বাংলা", "English"},
	"home.notices":         {"Notices", "নোটিশ"},
	"home.featured":        {"Featured posts", "নির্বাচিত লেখা"},
	"home.empty_notices":   {"There are no notices at the moment.", "এই মুহূর্তে কোনো নোটিশ নেই।"},
	"commission.formation": {"Formation of the Commission", "কমিশন গঠন"},
	"commission.formation_body": {
		"The Commission was constituted by government notification to inquire into the conduct of past national parliamentary elections, receive testimony from citizens and recommend reforms.",
		"অতীতের জাতীয় সংসদ নির্বাচনসমূহের পরিচালনা তদন্ত, নাগরিকদের সাক্ষ্য গ্রহণ এবং সংস্কারের সুপারিশ প্রদানের জন্য সরকারি প্রজ্ঞাপনের মাধ্যমে কমিশন গঠন করা হয়েছে।",
	},
	"commission.members":   {"Commission members", "কমিশনের সদস্যবৃন্দ"},
	"commission.officials": {"Officials", "কর্মকর্তাবৃন্দ"},
	"blog.title":           {"Blog", "ব্লগ"},
	"blog.empty":           {"No posts have been published yet.", "এখনো কোনো লেখা প্রকাশিত হয়নি।"},
	"blog.read_more":       {"Read more", "বিস্তারিত পড়ুন"},
	"blog.published_on":    {"Published on %s", "প্রকাশিত: %s"},
	"privacy.title":        {"Privacy Policy", "গোপনীয়তা নীতি"},
	"privacy.body": {
		"Information you submit to the Commission is used only for the inquiry. Personal details are never published, and anonymous submissions are stored without name, email, phone or address.",
		"কমিশনে জমা দেওয়া তথ্য কেবল তদন্তের কাজে ব্যবহৃত হয়। ব্যক্তিগত তথ্য কখনো প্রকাশ করা হয় না এবং বেনামি অভিযোগ নাম, ইমেইল, ফোন বা ঠিকানা ছাড়াই সংরক্ষণ করা হয়।",
	},
	"login.title":           {"Sign in to the dashboard", "ড্যাশবোর্ডে লগইন"},
	"login.email":           {"Email", "ইমেইল"},
	"login.password":        {"Password", "পাসওয়ার্ড"},
	"login.submit":          {"Sign in", "লগইন করুন"},
	"login.error.invalid":   {"Invalid email or password.", "ভুল ইমেইল অথবা পাসওয়ার্ড।"},
	"login.error.locked":    {"Too many login attempts. Please try again later.", "অনেকবার চেষ্টা করা হয়েছে। কিছুক্ষণ পর আবার চেষ্টা করুন।"},
	"login.error.disabled":  {"This account has been deactivated.", "এই অ্যাকাউন্টটি নিষ্ক্রিয় করা হয়েছে।"},
	"login.error.generic":   {"Network error. Please try again.", "নেটওয়ার্ক ত্রুটি। আবার চেষ্টা করুন।"},
	"dashboard.title":       {"Dashboard", "ড্যাশবোর্ড"},
	"dashboard.signed_in":   {"Signed in as %s (%s)", "%s (%s) হিসেবে লগইন করা হয়েছে"},
	"dashboard.submissions": {"Submissions", "অভিযোগসমূহ"},
	"dashboard.pending":     {"Pending", "অপেক্ষমাণ"},
	"dashboard.reviewed":    {"Reviewed", "পর্যালোচিত"},
	"dashboard.flagged":     {"Flagged", "চিহ্নিত"},
	"dashboard.users":       {"Active users", "সক্রিয় ব্যবহারকারী"},
	"dashboard.posts":       {"Blog posts", "ব্লগ পোস্ট"},
	"dashboard.notices":     {"Notices", "নোটিশ"},
	"dashboard.gazettes":    {"Gazettes", "গেজেট"},
	"unauthorized.title":    {"Access denied", "প্রবেশাধিকার নেই"},
	"unauthorized.body":     {"Your account does not have permission to view this page.", "এই পৃষ্ঠাটি দেখার অনুমতি আপনার অ্যাকাউন্টের নেই।"},
	"error.not_found":       {"The page you requested could not be found.", "অনুরোধকৃত পৃষ্ঠাটি পাওয়া যায়নি।"},
	"error.server":          {"Something went wrong. Please try again later.", "কিছু একটা ভুল হয়েছে। পরে আবার চেষ্টা করুন।"},
	"members.empty":         {"No members have been listed yet.", "এখনো কোনো সদস্যের তথ্য যোগ করা হয়নি।"},
}

var uiCatalog = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, e := range uiMessages {
		_ = b.SetString(language.English, key, e.en)
		_ = b.SetString(language.Bengali, key, e.bn)
	}
	return b
}

// Printer returns a message printer for lang backed by the UI catalog.
func Printer(lang Lang) *message.Printer {
	return message.NewPrinter(lang.Tag(), message.Catalog(uiCatalog))
}

// T translates a UI message key, formatting args into the message.
func T(lang Lang, key string, args ...interface{}) string {
	return Printer(lang).Sprintf(key, args...)
}
