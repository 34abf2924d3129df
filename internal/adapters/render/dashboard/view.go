package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/solana-autotransfer-cli/internal/application"
	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const emptyFeedMessage = "No transactions logged yet."

type RenderInput struct {
	Session application.SessionSnapshot
	Feed    application.FeedSnapshot
}

type RenderOptions struct {
	Now time.Time
	// FeedInterval lets the "updated" label fade as the log ages.
	FeedInterval time.Duration
	// FullKeys disables address shortening.
	FullKeys bool
}

func renderView(input RenderInput, opts RenderOptions, s styles) string {
	session := input.Session
	lines := []string{
		s.title.Render("Solana Auto Transfer"),
		s.header.Render(fmt.Sprintf("network: %s | wallets: %d | public key: %s",
			session.Config.Network,
			len(session.ActiveWallets),
			orNone(address(session.PublicKey, opts)),
		)),
	}

	lines = append(lines, s.section.Render(renderConfig(session.Config, opts, s)))
	lines = append(lines, s.section.Render(renderWallets(session, opts, s)))
	lines = append(lines, s.section.Render(renderFeed(input.Feed, opts, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderConfig(cfg domain.SessionConfig, opts RenderOptions, s styles) string {
	token := "native SOL"
	if cfg.TokenMintOption == domain.TokenMintCustom {
		token = "custom " + orNone(address(cfg.TokenMintAddress, opts))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.heading.Render("Config"),
		field(s, "label", orNone(cfg.Label)),
		field(s, "secure wallet", orNone(address(cfg.SecureWalletPublicKey, opts))),
		field(s, "token", token),
		field(s, "gas fee", fmt.Sprintf("%s (%d)", cfg.GasFeeTier, cfg.GasFee())),
		field(s, "seed", seedSummary(cfg.Seed)),
	)
}

func renderWallets(session application.SessionSnapshot, opts RenderOptions, s styles) string {
	parts := []string{s.heading.Render(fmt.Sprintf("Active Wallets (%d)", len(session.ActiveWallets)))}

	if session.PendingStarts > 0 {
		parts = append(parts, s.warning.Render(fmt.Sprintf("starting %d session(s)...", session.PendingStarts)))
	}

	if len(session.ActiveWallets) == 0 {
		parts = append(parts, s.empty.Render("No active wallets."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	stopping := make(map[string]struct{}, len(session.Stopping))
	for _, publicKey := range session.Stopping {
		stopping[publicKey] = struct{}{}
	}

	for _, wallet := range session.ActiveWallets {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			s.wallet.Render(address(wallet.PublicKey, opts)),
			" ",
			s.detail.Render(fmt.Sprintf("%s | %s | %s | fee %d",
				orNone(wallet.Label),
				wallet.Network,
				walletToken(wallet, opts),
				wallet.GasFee,
			)),
		)
		if _, ok := stopping[wallet.PublicKey]; ok {
			line += " " + s.warning.Render("[stopping]")
		}
		parts = append(parts, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderFeed(feed application.FeedSnapshot, opts RenderOptions, s styles) string {
	heading := s.heading.Render(fmt.Sprintf("Transactions (%d)", len(feed.Transactions)))
	if updated := updatedLabel(feed, opts); updated != "" {
		heading = lipgloss.JoinHorizontal(lipgloss.Top, heading, " ", updated)
	}
	parts := []string{heading}

	if len(feed.Transactions) == 0 {
		parts = append(parts, s.empty.Render(emptyFeedMessage))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, tx := range feed.Transactions {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
			s.signature.Render(address(tx.Signature, opts)),
			" ",
			s.detail.Render(fmt.Sprintf("%s -> %s  %s %s",
				address(tx.From, opts),
				address(tx.To, opts),
				formatAmount(tx.Amount),
				tx.Token,
			)),
			" ",
			statusStyle(tx.Status, s).Render(orNone(string(tx.Status))),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func updatedLabel(feed application.FeedSnapshot, opts RenderOptions) string {
	if feed.UpdatedAt.IsZero() {
		return ""
	}
	age := opts.Now.Sub(feed.UpdatedAt)
	if age < 0 {
		age = 0
	}

	// Fresh logs are bright, logs older than a few intervals fade out.
	window := 3 * opts.FeedInterval
	if window <= 0 {
		window = 15 * time.Second
	}
	color := interpolateColor(window.Seconds()-age.Seconds(), 0, window.Seconds())

	return lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("updated %s ago", age.Truncate(time.Second)))
}

func field(s styles, key string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key+":"), " ", s.detail.Render(value))
}

func statusStyle(status domain.TransactionStatus, s styles) lipgloss.Style {
	switch status {
	case domain.TransactionConfirmed:
		return s.confirmed
	case domain.TransactionFailed:
		return s.failed
	default:
		return s.pending
	}
}

func walletToken(wallet domain.ActiveWallet, opts RenderOptions) string {
	if wallet.TokenMintOption == domain.TokenMintCustom && wallet.TokenMintAddress != "" {
		return address(wallet.TokenMintAddress, opts)
	}
	return "SOL"
}

func seedSummary(seed domain.Seed) string {
	if seed.IsEmpty() {
		return "not set"
	}
	summary := fmt.Sprintf("%d words", len(seed))
	if !seed.IsMnemonic() {
		summary += " (not a bip39 mnemonic)"
	}
	return summary
}

func address(value string, opts RenderOptions) string {
	if opts.FullKeys {
		return value
	}
	return domain.ShortAddress(value)
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func orNone(value string) string {
	if value == "" {
		return "none"
	}
	return value
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp, 240 faded to 255 bright.
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(strconv.Itoa(colorCode))
}
