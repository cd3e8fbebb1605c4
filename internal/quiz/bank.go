package quiz

import "fmt"

// Seeded question bank, four questions per OWASP module. Administrative
// re-seed is the only way these change at runtime.
func init() {
	qb = buildBank(seedQuestions())
	for topic, qs := range qb.byTopic {
		if len(qs) < 2 {
			panic(fmt.Sprintf("question bank seed: topic %s has %d questions", topic, len(qs)))
		}
	}
}

func seedQuestions() []Question {
	var out []Question
	n := make(map[string]int)
	add := func(topic, prompt string, choices [4]string, answer int, explanation string) {
		n[topic]++
		out = append(out, Question{
			ID:          fmt.Sprintf("%s-Q%d", topic, n[topic]),
			Topic:       topic,
			Prompt:      prompt,
			Choices:     choices[:],
			Answer:      answer,
			Explanation: explanation,
		})
	}

	add("A01", "Where must authorization checks be enforced?",
		[4]string{"In the browser", "On the server, for every request", "Only at login", "In the URL"},
		1, "Client-side checks can be bypassed; the server must verify every request.")
	add("A01", "A user changes the order ID in a URL and sees another customer's invoice. What flaw is this?",
		[4]string{"SQL injection", "Cross-site scripting", "Insecure direct object reference", "Session fixation"},
		2, "Reaching records by editing identifiers without an ownership check is an IDOR.")
	add("A01", "What is the safest default for a new permission system?",
		[4]string{"Allow everything, then restrict", "Deny by default", "Allow read-only", "Mirror the admin's rights"},
		1, "Deny by default means a missed rule fails closed instead of open.")
	add("A01", "Hiding the admin link from non-admin users is sufficient access control.",
		[4]string{"True", "False", "Only over HTTPS", "Only for internal apps"},
		1, "Hiding UI is not enforcement; the admin endpoint itself must check the role.")

	add("A02", "How should user passwords be stored?",
		[4]string{"Encrypted with AES", "Plaintext in a locked-down table", "Hashed with a slow, salted algorithm", "Base64 encoded"},
		2, "bcrypt or argon2 hashes cannot be reversed even if the database leaks.")
	add("A02", "An API key was committed to a public repository and removed an hour later. What now?",
		[4]string{"Nothing, it was removed", "Rotate the key", "Make the repo private", "Delete the commit history"},
		1, "Assume any credential that reached a public repo is compromised and rotate it.")
	add("A02", "Which traffic needs TLS?",
		[4]string{"Only login pages", "Only payment pages", "Anything crossing a network", "Only public-facing pages"},
		2, "Internal panels and APIs are intercepted on shared networks just like public pages.")
	add("A02", "Base64 encoding protects sensitive data at rest.",
		[4]string{"True", "False", "Only with a random prefix", "Only for short values"},
		1, "Base64 is an encoding, not encryption; anyone can decode it.")

	add("A03", "What is the primary defense against SQL injection?",
		[4]string{"Escaping quotes by hand", "Parameterized queries", "Hiding error messages", "A web application firewall"},
		1, "Parameterized queries keep data out of the query text entirely.")
	add("A03", "A search box accepting ' OR '1'='1 returns every record. What happened?",
		[4]string{"Cache poisoning", "User input was concatenated into the query", "The index was corrupted", "A CSRF attack"},
		1, "The input became part of the SQL statement and changed its logic.")
	add("A03", "Which of these is also an injection target?",
		[4]string{"A shell command built from a filename", "A static HTML page", "A CSS stylesheet", "A favicon"},
		0, "Any interpreter fed untrusted input can be injected, not just SQL.")
	add("A03", "Validating input against an allow-list replaces parameterized queries.",
		[4]string{"True", "False", "Only for numeric fields", "Only with an ORM"},
		1, "Validation reduces exposure but parameterization is still the core defense.")

	add("A04", "What distinguishes insecure design from an implementation bug?",
		[4]string{"It only affects old systems", "The flaw exists even when the code is written perfectly", "It is always found by scanners", "It cannot be exploited"},
		1, "A missing or ineffective control cannot be patched, only redesigned.")
	add("A04", "When is the cheapest time to address a design flaw?",
		[4]string{"After launch", "During a pentest", "Before the feature is built", "During incident response"},
		2, "Asking what can go wrong per feature before building costs whiteboard time, not rework.")
	add("A04", "What is an abuse case?",
		[4]string{"A bug report", "A use case written from the attacker's point of view", "A support ticket", "A load test"},
		1, "Writing abuse cases next to use cases surfaces missing controls early.")
	add("A04", "A password-reset flow emails the user's current password. Best fix?",
		[4]string{"Use TLS for the email", "Rate-limit the endpoint", "Redesign to send a one-time reset link", "Shorten the password"},
		2, "Storing recoverable passwords is a design flaw; no patch fixes it in place.")

	add("A05", "A staging server still has admin/admin credentials. Which category is this?",
		[4]string{"Injection", "Security misconfiguration", "Cryptographic failure", "SSRF"},
		1, "Default credentials and forgotten services are classic misconfiguration.")
	add("A05", "Should production error pages show stack traces?",
		[4]string{"Yes, for faster debugging", "No, they leak internals to attackers", "Only for HTTP 500", "Only to logged-in users"},
		1, "Verbose errors map your stack for an attacker; log details server-side instead.")
	add("A05", "What makes hardening stick over time?",
		[4]string{"A one-off checklist", "A repeatable, scripted configuration process", "Annual audits", "Trusting cloud defaults"},
		1, "Scripted configuration prevents drift; manual hardening erodes with every change.")
	add("A05", "Which of these reduces attack surface most directly?",
		[4]string{"Disabling unused features and services", "Longer passwords", "More logging", "A new framework"},
		0, "Every enabled feature is something to configure, patch, and defend.")

	add("A06", "Why is an inventory of components the first step?",
		[4]string{"Licensing compliance", "You cannot patch what you do not know you run", "It speeds up builds", "Auditors require it"},
		1, "Dependency inventories turn patching from guesswork into a checklist.")
	add("A06", "A critical CVE lands in a library you use. What matters most?",
		[4]string{"The library's popularity", "How fast you can test and deploy the fix", "The CVE's age", "Who reported it"},
		1, "Exposure time is the window between disclosure and your deploy.")
	add("A06", "Unmaintained dependencies are acceptable if they currently pass tests.",
		[4]string{"True", "False", "Only for internal tools", "Only with a WAF"},
		1, "No maintainer means no patches when the next vulnerability is found.")
	add("A06", "What does automated dependency scanning give you?",
		[4]string{"Proof of security", "Early warning of known-vulnerable versions", "License cleanup", "Smaller binaries"},
		1, "Scanners match your inventory against published advisories continuously.")

	add("A07", "What is credential stuffing?",
		[4]string{"Guessing one account's password", "Replaying leaked username/password pairs across sites", "Phishing for credentials", "Brute-forcing session IDs"},
		1, "Reused passwords make one site's breach every other site's problem.")
	add("A07", "Which control blunts credential stuffing most?",
		[4]string{"Password complexity rules", "Multi-factor authentication", "Security questions", "Longer session timeouts"},
		1, "A stolen password alone is not enough when a second factor is required.")
	add("A07", "What should happen to a session ID at login?",
		[4]string{"Nothing", "It should be regenerated", "It should be logged", "It should be emailed"},
		1, "Regenerating the session at privilege change prevents session fixation.")
	add("A07", "Account lockout after a few failures stops all authentication attacks.",
		[4]string{"True", "False", "Only with CAPTCHA", "Only for admin accounts"},
		1, "Lockout helps against brute force but not stuffing spread across many accounts.")

	add("A08", "Your build pipeline pulls a dependency over plain HTTP. What is the risk?",
		[4]string{"Slower builds", "A tampered package reaching production", "License issues", "Larger artifacts"},
		1, "Unverified delivery channels let attackers substitute code you then ship.")
	add("A08", "What does signing releases protect against?",
		[4]string{"Reverse engineering", "Tampered or substituted artifacts", "Slow downloads", "Key leakage"},
		1, "Signatures let consumers verify the artifact is what the publisher built.")
	add("A08", "Deserializing untrusted data is risky because it can",
		[4]string{"be slow", "instantiate attacker-chosen objects and behavior", "use too much memory", "break schemas"},
		1, "Serialized payloads can smuggle behavior, not just data.")
	add("A08", "CI configuration changes deserve the same review as code.",
		[4]string{"True", "False", "Only on release branches", "Only for public repos"},
		0, "The pipeline decides what ships; compromising it compromises every release.")

	add("A09", "Average breach discovery takes months. What shortens it?",
		[4]string{"Stronger passwords", "Monitoring and alerting on security events", "Annual pentests", "More backups"},
		1, "Detection needs someone, or something, watching the logs as they happen.")
	add("A09", "Which event is most important to log?",
		[4]string{"Page views", "Failed and successful authentication attempts", "CSS errors", "Cache hits"},
		1, "Login activity is where account takeover shows up first.")
	add("A09", "Logs stored only on the compromised server are",
		[4]string{"fine if rotated", "deletable by the attacker", "faster to search", "required by GDPR"},
		1, "Ship logs off-host so an intruder cannot erase their own trail.")
	add("A09", "An alert that nobody is assigned to act on is",
		[4]string{"still useful", "effectively no alert at all", "a compliance artifact", "a backup"},
		1, "Monitoring without an owner and a response path does not shorten discovery.")

	add("A10", "What is server-side request forgery?",
		[4]string{"The server rejecting a request", "Tricking the server into fetching an attacker-chosen URL", "Forging a user's session", "Spoofing DNS"},
		1, "The server's own network position is abused to reach internal targets.")
	add("A10", "Why are cloud metadata endpoints a prime SSRF target?",
		[4]string{"They are slow", "They hand out instance credentials", "They are encrypted", "They log requests"},
		1, "169.254.169.254 returns credentials that turn SSRF into account takeover.")
	add("A10", "Best defense for a feature that fetches user-supplied URLs?",
		[4]string{"A bigger timeout", "Allow-list the destinations the server may reach", "Block only 'localhost'", "Use GET instead of POST"},
		1, "Deny-lists are bypassed with redirects and alternate encodings; allow-lists fail closed.")
	add("A10", "Blocking the string 'localhost' in URLs stops SSRF.",
		[4]string{"True", "False", "Only over HTTP", "Only with DNS pinning"},
		1, "127.0.0.1, decimal IPs, redirects, and rebinding all route around string filters.")

	return out
}
