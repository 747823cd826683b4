package llm

// QuestionSystemPrompt pins the model to JSON-only output for question
// generation.
const QuestionSystemPrompt = `You are an expert interviewer. Return only valid JSON. No commentary.`

// QuestionPrompt takes the question count, the category and its guidance
// string.
const QuestionPrompt = `Generate %d concise interview questions tailored to this theme:

Theme: %s
Guidance: %s

Rules:
- Questions should be crisp, unambiguous, and interview-ready.
- Do NOT number questions in the text; indices are assigned by the caller.
- Return STRICT JSON array of objects with fields: "questionText".
- Example:
[
  {"questionText":"Explain event loop in JavaScript with an example."},
  {"questionText":"Describe a time you resolved a team conflict."}
]`

// EvaluationSystemPrompt pins the model to JSON-only output for answer
// scoring.
const EvaluationSystemPrompt = `You are an experienced interview coach. Return only valid JSON. No commentary.`

// EvaluationPrompt takes the question text and the candidate's answer.
const EvaluationPrompt = `Evaluate the following interview answer.

Question: %s

Answer: %s

Score the answer from 0 to 10 for clarity, relevance, use of concrete
examples and quantifiable results. Write 2-4 sentences of constructive
feedback addressed to the candidate.

You must respond ONLY with a valid JSON object, no other text before or
after. Do not include any markdown formatting or code blocks.

{"score": 7, "feedback": "your feedback here"}`

// ResumeFeedbackPrompt takes the extracted resume text.
const ResumeFeedbackPrompt = `Review the following resume text for ATS compatibility and overall
quality. Comment on structure, keywords, quantifiable achievements and
action verbs. Answer in markdown with "Strengths", "Areas for Improvement"
and "Recommendations" sections, 3-4 bullet points each. Do not repeat the
resume back.

Resume:
%s`
