package response_models

// PackingList groups checklist items by section.
type PackingList map[string][]string
