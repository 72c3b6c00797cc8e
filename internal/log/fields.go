package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldUserAgent   = "user_agent"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldTransaction = "transaction_id"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldSessionID   = "session_id"
	FieldSymbol      = "symbol"
)

// Components defines standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentChat    = "chat"
	ComponentStocks  = "stocks"
	ComponentStorage = "storage"
	ComponentEvents  = "events"
	ComponentAdvisor = "advisor"
	ComponentMarket  = "market"
	ComponentBackend = "backend"
)

// Operations defines standard operation names.
const (
	OpCreate   = "create"
	OpDelete   = "delete"
	OpList     = "list"
	OpSummary  = "summary"
	OpAsk      = "ask"
	OpHistory  = "history"
	OpQuote    = "quote"
	OpAnalyze  = "analyze"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
