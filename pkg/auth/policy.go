package auth

// Action is the outcome of classifying an authentication attempt against the
// account lookup result.
type Action int

const (
	// ActionCreate creates a new account claimed by the current provider.
	ActionCreate Action = iota
	// ActionAttach claims the located account by updating its metadata.
	ActionAttach
	// ActionAccept returns the located account as-is, with no mutation.
	ActionAccept
	// ActionReject fails the attempt with an AlreadyExistsError.
	ActionReject
)

// String implements fmt.Stringer for logging.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionAttach:
		return "attach"
	case ActionAccept:
		return "accept"
	case ActionReject:
		return "reject"
	default:
		return "unknown"
	}
}

// Decide classifies one authentication attempt. It is a pure function over
// the lookup result (nil means not found), the surface the attempt targets,
// the provider name and the configured strict mode.
//
// The decision matrix:
//
//   - account not found: create, always.
//   - account exists without the federated marker: it predates any federated
//     linkage; reject on the strict-protected surface, accept as-is
//     elsewhere.
//   - federated marker present but no provider recorded: a partial claim;
//     attach (complete the claim) regardless of strict mode.
//   - provider recorded and matching the current provider and surface:
//     accept, idempotent re-authentication.
//   - provider recorded but different: reject on the strict-protected
//     surface, accept as-is elsewhere.
func Decide(account *Account, surface Surface, provider string, strict StrictMode) Action {
	if account == nil {
		return ActionCreate
	}

	if !account.Federated() {
		if strict.Protects(surface) {
			return ActionReject
		}
		return ActionAccept
	}

	switch key := account.AuthProvider(); {
	case key == "":
		return ActionAttach
	case key == ProviderKey(provider, surface):
		return ActionAccept
	case strict.Protects(surface):
		return ActionReject
	default:
		return ActionAccept
	}
}
