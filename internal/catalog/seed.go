package catalog

import "fmt"

// Seeded OWASP 2021 Top 10 modules. Administrative re-seed is the only way
// this data changes at runtime.
func init() {
	c = buildCatalog(seedModules(), seedLessons())
	if err := Validate(); err != nil {
		panic(fmt.Sprintf("catalog seed invalid: %v", err))
	}
}

func seedModules() []Module {
	return []Module{
		{Code: "A01", Name: "Broken Access Control", Order: 1, DifficultyTier: TierBeginner, EstimatedHours: 2,
			Description: "Who can do what, and why the default answer should be nobody."},
		{Code: "A02", Name: "Cryptographic Failures", Order: 2, DifficultyTier: TierBeginner, EstimatedHours: 2,
			Description: "Protecting data in transit and at rest without rolling your own crypto."},
		{Code: "A03", Name: "Injection", Order: 3, DifficultyTier: TierBeginner, EstimatedHours: 2.5,
			Description: "Untrusted input reaching interpreters: SQL, OS commands, templates."},
		{Code: "A04", Name: "Insecure Design", Order: 4, DifficultyTier: TierIntermediate, EstimatedHours: 3,
			Description: "Flaws you cannot patch because they were designed in."},
		{Code: "A05", Name: "Security Misconfiguration", Order: 5, DifficultyTier: TierIntermediate, EstimatedHours: 2,
			Description: "Default accounts, open cloud buckets, verbose errors in production."},
		{Code: "A06", Name: "Vulnerable and Outdated Components", Order: 6, DifficultyTier: TierIntermediate, EstimatedHours: 2,
			Description: "Knowing what you run and when it needs patching."},
		{Code: "A07", Name: "Identification and Authentication Failures", Order: 7, DifficultyTier: TierIntermediate, EstimatedHours: 2.5,
			Description: "Credential stuffing, weak session handling, missing MFA."},
		{Code: "A08", Name: "Software and Data Integrity Failures", Order: 8, DifficultyTier: TierAdvanced, EstimatedHours: 2.5,
			Description: "Trusting updates, pipelines, and serialized data you should verify."},
		{Code: "A09", Name: "Security Logging and Monitoring Failures", Order: 9, DifficultyTier: TierAdvanced, EstimatedHours: 2,
			Description: "Detecting the breach before your customers do."},
		{Code: "A10", Name: "Server-Side Request Forgery", Order: 10, DifficultyTier: TierAdvanced, EstimatedHours: 2,
			Description: "When your server fetches URLs an attacker chose."},
	}
}

func seedLessons() []Lesson {
	var out []Lesson
	add := func(module string, order int, title string, minutes int, content LessonContent) {
		out = append(out, Lesson{
			ID:               fmt.Sprintf("%s-%d", module, order),
			ModuleCode:       module,
			Order:            order,
			Title:            title,
			EstimatedMinutes: minutes,
			Content:          content,
		})
	}

	add("A01", 1, "What Access Control Means for a Small Business", 10, LessonContent{
		WhyItMatters:       "Broken access control is the most common web weakness, and small teams rarely review who can see what.",
		WhatItIs:           "Access control enforces which users may perform which actions on which data.",
		RealWorldExample:   "A shop's order page accepted any order ID in the URL, exposing every customer's invoice.",
		HowToProtect:       []string{"Deny by default", "Check permissions on the server, never the client", "Review shared-account usage quarterly"},
		QuickCheckQuestion: "Where must access checks be enforced: client or server?",
		QuickCheckAnswer:   "server",
		KeyTakeaway:        "Every request must prove it is allowed, every time.",
	})
	add("A01", 2, "IDs in URLs and Other Direct Object References", 12, LessonContent{
		WhyItMatters:       "Guessable identifiers turn one leaked link into a full data breach.",
		WhatItIs:           "Insecure direct object references let users reach records by editing identifiers.",
		RealWorldExample:   "Incrementing an employee ID in a payroll export URL revealed colleagues' salaries.",
		HowToProtect:       []string{"Scope every query by the authenticated owner", "Use random identifiers", "Log and alert on authorization failures"},
		QuickCheckQuestion: "Does switching to random IDs alone fix an IDOR flaw?",
		QuickCheckAnswer:   "no",
		KeyTakeaway:        "Ownership checks, not obscurity, stop object-reference abuse.",
	})
	add("A02", 1, "Encrypt in Transit: TLS Everywhere", 10, LessonContent{
		WhyItMatters:       "Customer data crossing the network in the clear is a GDPR incident waiting to happen.",
		WhatItIs:           "TLS protects data between browser and server from interception and tampering.",
		RealWorldExample:   "A café's booking form posted card details over plain HTTP on shared Wi-Fi.",
		HowToProtect:       []string{"Serve everything over HTTPS", "Redirect HTTP to HTTPS", "Renew certificates automatically"},
		QuickCheckQuestion: "Should internal admin panels also use TLS?",
		QuickCheckAnswer:   "yes",
		KeyTakeaway:        "If it travels over a network, encrypt it.",
	})
	add("A02", 2, "Storing Secrets and Passwords", 12, LessonContent{
		WhyItMatters:       "A stolen database of reversible passwords compromises users on every other site too.",
		WhatItIs:           "Passwords are hashed with slow, salted algorithms; secrets live outside source code.",
		RealWorldExample:   "An agency committed its mail API key to a public repository; spammers found it within hours.",
		HowToProtect:       []string{"Hash passwords with bcrypt or argon2", "Keep secrets in environment or a vault", "Rotate any credential that ever reached a repo"},
		QuickCheckQuestion: "Is encrypting passwords (reversibly) as good as hashing them?",
		QuickCheckAnswer:   "no",
		KeyTakeaway:        "Store the proof of a password, never the password.",
	})
	add("A03", 1, "SQL Injection in Plain Language", 12, LessonContent{
		WhyItMatters:       "One unsanitized form field can hand an attacker your whole database.",
		WhatItIs:           "Injection happens when user input is concatenated into a query or command.",
		RealWorldExample:   "A search box that accepted ' OR '1'='1 listed every customer record.",
		HowToProtect:       []string{"Use parameterized queries everywhere", "Validate input against an allow-list", "Run the app with a least-privilege database user"},
		QuickCheckQuestion: "What is the primary defense against SQL injection?",
		QuickCheckAnswer:   "parameterized queries",
		KeyTakeaway:        "Data and code must never travel in the same string.",
	})
	add("A03", 2, "Beyond SQL: Command and Template Injection", 12, LessonContent{
		WhyItMatters:       "Injection is a family of flaws; fixing only SQL leaves the back door open.",
		WhatItIs:           "Any interpreter fed untrusted input (shells, LDAP, template engines) can be injected.",
		RealWorldExample:   "A PDF-export feature passed a filename to a shell; a crafted name ran arbitrary commands.",
		HowToProtect:       []string{"Avoid shelling out with user input", "Use libraries that separate arguments from commands", "Escape output per context"},
		QuickCheckQuestion: "Is injection limited to SQL databases?",
		QuickCheckAnswer:   "no",
		KeyTakeaway:        "Every interpreter in your stack is an injection target.",
	})
	add("A04", 1, "Threat Modeling on a Whiteboard", 15, LessonContent{
		WhyItMatters:       "Design flaws cost ten times more to fix after launch, if they can be fixed at all.",
		WhatItIs:           "Insecure design is missing or ineffective control design, distinct from buggy implementation.",
		RealWorldExample:   "A password-reset flow that emailed the old password could not be patched, only redesigned.",
		HowToProtect:       []string{"Ask 'what can go wrong' per feature before building", "Write abuse cases next to use cases", "Limit resource consumption by design"},
		QuickCheckQuestion: "Can a perfectly implemented insecure design be exploited?",
		QuickCheckAnswer:   "yes",
		KeyTakeaway:        "Security starts before the first line of code.",
	})
	add("A05", 1, "Hardening Defaults and Configurations", 10, LessonContent{
		WhyItMatters:       "Misconfiguration is the most commonly seen issue, and scanners find it in minutes.",
		WhatItIs:           "Unnecessary features enabled, default credentials, verbose errors, missing headers.",
		RealWorldExample:   "A staging server with default admin/admin credentials was indexed by a search engine.",
		HowToProtect:       []string{"Disable what you do not use", "Change every default credential", "Make hardening a repeatable, scripted process"},
		QuickCheckQuestion: "Should production error pages show stack traces?",
		QuickCheckAnswer:   "no",
		KeyTakeaway:        "Secure is a configuration you apply, not a default you inherit.",
	})
	add("A06", 1, "Knowing Your Dependencies", 10, LessonContent{
		WhyItMatters:       "You ship every vulnerability of every library you depend on.",
		WhatItIs:           "Using components with known vulnerabilities, or not knowing component versions at all.",
		RealWorldExample:   "An SMB's webshop ran a CMS plugin two years behind; a public exploit took it over.",
		HowToProtect:       []string{"Keep an inventory of components and versions", "Subscribe to security advisories", "Patch on a schedule, not on a breach"},
		QuickCheckQuestion: "Is software without updates in two years safer because it is stable?",
		QuickCheckAnswer:   "no",
		KeyTakeaway:        "Unmaintained dependencies are silent liabilities.",
	})
	add("A07", 1, "Passwords, MFA, and Session Basics", 12, LessonContent{
		WhyItMatters:       "Credential stuffing works because people reuse passwords; your login page is the test bench.",
		WhatItIs:           "Authentication failures include weak password policy, missing MFA, and long-lived sessions.",
		RealWorldExample:   "An accountant's reused password from a breached forum opened the company's bookkeeping SaaS.",
		HowToProtect:       []string{"Enable MFA for every staff account", "Rate-limit and monitor login attempts", "Invalidate sessions on logout and password change"},
		QuickCheckQuestion: "What single control best blunts credential stuffing?",
		QuickCheckAnswer:   "mfa",
		KeyTakeaway:        "Assume passwords leak; make them insufficient on their own.",
	})
	add("A08", 1, "Trusting Updates and Pipelines", 12, LessonContent{
		WhyItMatters:       "A poisoned update or build step ships attacker code with your own signature.",
		WhatItIs:           "Integrity failures: unsigned updates, insecure deserialization, tampered CI artifacts.",
		RealWorldExample:   "An auto-update channel without signature checks delivered a backdoored build to every client.",
		HowToProtect:       []string{"Verify signatures on updates and dependencies", "Protect CI credentials like production secrets", "Never deserialize untrusted data into executable objects"},
		QuickCheckQuestion: "Does HTTPS alone guarantee an update is authentic?",
		QuickCheckAnswer:   "no",
		KeyTakeaway:        "Verify integrity end to end, not just in transit.",
	})
	add("A09", 1, "Logging What Matters", 10, LessonContent{
		WhyItMatters:       "The average breach goes unnoticed for months; logs are how you shorten that.",
		WhatItIs:           "Missing or unmonitored logs for logins, failures, and high-value transactions.",
		RealWorldExample:   "An exfiltration ran for weeks because failed-login spikes were logged nowhere.",
		HowToProtect:       []string{"Log authentication and authorization failures", "Centralize logs off the host", "Alert on patterns, review alerts weekly"},
		QuickCheckQuestion: "Are logs useful if nobody ever reads or alerts on them?",
		QuickCheckAnswer:   "no",
		KeyTakeaway:        "You cannot respond to what you never saw.",
	})
	add("A10", 1, "Server-Side Request Forgery Explained", 12, LessonContent{
		WhyItMatters:       "Cloud metadata endpoints make SSRF a direct path to credentials.",
		WhatItIs:           "SSRF tricks your server into fetching attacker-chosen URLs from inside your network.",
		RealWorldExample:   "An image-preview feature fetched internal addresses, exposing an admin-only service.",
		HowToProtect:       []string{"Allow-list outbound destinations", "Block internal address ranges", "Never forward raw fetch responses to users"},
		QuickCheckQuestion: "Is validating the URL scheme (http/https) enough to stop SSRF?",
		QuickCheckAnswer:   "no",
		KeyTakeaway:        "Treat your own server's outbound requests as untrusted.",
	})

	return out
}
