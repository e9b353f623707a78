package request

// OMDbPageSize is the fixed number of results per OMDb search page.
const OMDbPageSize = 10
