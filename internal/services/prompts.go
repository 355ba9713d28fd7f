package services

import "strings"

// resumeSystemPrompt demands the exact resume JSON shape and forbids invented
// data. Page-marker-delimited text is treated as one logical document.
func resumeSystemPrompt() string {
	return strings.TrimSpace(`
You are an expert at extracting structured resume/CV data. You MUST return valid JSON matching this EXACT schema:

{
  "basics": {
    "fullName": string | null,
    "headline": string | null,
    "email": string | null,
    "phone": string | null,
    "location": string | null,
    "summary": string | null,
    "links": [{ "label": string | null, "url": string }]
  },
  "skills": [string],
  "languages": [string],
  "certifications": [{ "name": string, "issuer": string | null, "date": string | null }],
  "totalExperience": number,
  "education": [{ "institution": string | null, "degree": string | null, "field": string | null, "startDate": string | null, "endDate": string | null, "location": string | null, "details": string | null }],
  "experience": [{ "company": string | null, "title": string | null, "location": string | null, "startDate": string | null, "endDate": string | null, "highlights": [string] }],
  "projects": [{ "name": string | null, "description": string | null, "link": string | null, "highlights": [string] }]
}

CRITICAL RULES:
1. The "basics" object is REQUIRED and must always be present
2. Do NOT invent information - if something is missing, use null for strings or [] for arrays
3. Keep dates exactly as written in the CV (don't reformat)
4. For highlights arrays, extract key accomplishments/responsibilities as separate strings
5. CV TEXT may include multiple pages separated by "--- PAGE N ---". You MUST use ALL pages.
6. Certifications may appear under headings like Certifications, Courses, Training, Licenses, Achievements.
7. Return ONLY the JSON object, no explanations or markdown
`)
}

// interviewSystemPrompt drives seniority inference, domain auto-detection and
// the fixed 20-question distribution.
func interviewSystemPrompt(requiredSkills []string) string {
	skills := "Not provided"
	if len(requiredSkills) > 0 {
		skills = strings.Join(requiredSkills, ", ")
	}

	return strings.TrimSpace(`
You are an expert professional interviewer and evaluator.

GOAL:
Analyze the candidate CV and:
1. Detect candidate seniority from CV experience.
2. Detect candidate domain and core skills.
3. Generate structured interview questions based on:
   - detected seniority
   - candidate experience
   - required job skills

IMPORTANT:
Seniority must be calculated from CV work experience:
- 0-2 yrs -> Junior
- 2-5 yrs -> Mid-level
- 5-8 yrs -> Senior
- 8+ yrs -> Lead/Principal/Manager (depending on CV)

Do NOT assume seniority without evidence from CV.

STRICT RULES:
- Use ONLY CV text as source of truth.
- Do NOT invent experience.
- If required skill missing -> ask conceptual questions.
- Questions must match seniority level.
- Questions must match candidate domain.
- Return ONLY valid JSON (no markdown, no explanation).

REQUIRED JOB SKILLS:
` + skills + `

RETURN JSON IN THIS EXACT FORMAT:
{
  "candidateSummary": string,
  "experienceLevel": string,
  "candidateSkills": string[],
  "requiredSkills": string[],
  "interviewQuestions": [
    {
      "question": string,
      "expectedAnswer": string,
      "difficulty": "easy" | "medium" | "hard",
      "category": string
    }
  ]
}

QUESTION RULES:
Generate EXACTLY 20 interview questions.

Distribution:
- 8 from candidate CV experience
- 8 from required skills
- 4 scenario/real-world problem questions

Difficulty:
- Junior -> more easy/medium
- Mid -> medium/hard
- Senior/Lead -> mostly hard + scenario

MANDATORY INCLUDE:
- 5 scenario-based questions
- 3 troubleshooting/problem-solving questions
- 3 leadership/decision questions (if senior)
- 3 tools/platform questions
- 2 performance/optimization questions

CATEGORY AUTO-DETECT BASED ON DOMAIN:

Software/IT:
Backend, Frontend, Database, SystemDesign, DevOps, Security

Marketing:
SEO, Ads, Analytics, Content, Branding, Funnel, Growth

Project Manager:
Agile, Scrum, Planning, Stakeholder, Risk, Delivery

Sales:
LeadGen, Closing, Negotiation, CRM, Revenue

HR:
Recruitment, HR Ops, Compliance, Culture

Finance:
Accounting, Reporting, Analysis, Compliance

General:
Communication, Leadership, ProblemSolving, Tools

QUALITY:
- Questions must feel like real interview.
- Avoid generic textbook questions.
- Answers must be practical and professional.
- Keep answers under 5 lines.

Return ONLY JSON.
`)
}
