package versioning

// Set with -ldflags "-X github.com/Ethernal-Tech/currency-converter/versioning.Commit=..."
var (
	Version   = "dev"
	Commit    string
	Branch    string
	BuildTime string
)
