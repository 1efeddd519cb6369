package common

const (
	KEY_SIMILAR_IMAGES = "similar_images:%s:%d"
	KEY_SYSTEM_PARAM   = "system_param:%s"
)

const (
	LLM_PROVIDER_OLLAMA = "ollama"
	LLM_PROVIDER_GEMINI = "gemini"
)

// MAX_SEARCH_RESULTS caps keyword search responses.
const MAX_SEARCH_RESULTS = 10
