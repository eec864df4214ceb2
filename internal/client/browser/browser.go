// Package browser replays a DMS session in headless Chrome. It is the
// second-chance path when plain HTTP returns pages without data.
package browser

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/you-humble/ge-sync/platform/logger"
)

type client struct {
	opts []chromedp.ExecAllocatorOption
}

func NewClient(opts ...chromedp.ExecAllocatorOption) *client {
	all := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	all = append(all,
		chromedp.Flag("headless", true),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
	)
	all = append(all, opts...)

	return &client{opts: all}
}

// FetchHTML loads pageURL with cookies installed for its host, waits up to
// wait for selector to be ready and returns the page HTML. A wait timeout
// is not an error: whatever HTML is present is returned.
func (c *client) FetchHTML(
	ctx context.Context,
	pageURL string,
	cookies []*http.Cookie,
	selector string,
	wait time.Duration,
) (string, error) {
	const op = "browser.client.FetchHTML"

	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, c.opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	err = chromedp.Run(tabCtx,
		network.Enable(),
		setCookies(u.Hostname(), cookies),
		chromedp.Navigate(pageURL),
	)
	if err != nil {
		return "", fmt.Errorf("%s: navigate: %w", op, err)
	}

	if selector != "" {
		waitCtx, cancelWait := context.WithTimeout(tabCtx, wait)
		err = chromedp.Run(waitCtx, chromedp.WaitReady(selector, chromedp.ByQuery))
		cancelWait()
		if err != nil {
			if !errors.Is(err, context.DeadlineExceeded) {
				return "", fmt.Errorf("%s: wait: %w", op, err)
			}
			logger.Warn(ctx, "browser wait timed out, continuing",
				logger.String("selector", selector),
				logger.Duration("wait", wait),
			)
		}
	}

	var html string
	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("%s: read html: %w", op, err)
	}

	return html, nil
}

func setCookies(domain string, cookies []*http.Cookie) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		for _, ck := range cookies {
			path := ck.Path
			if path == "" {
				path = "/"
			}
			err := network.SetCookie(ck.Name, ck.Value).
				WithDomain(domain).
				WithPath(path).
				WithHTTPOnly(ck.HttpOnly).
				WithSecure(ck.Secure).
				Do(ctx)
			if err != nil {
				return fmt.Errorf("set cookie %s: %w", ck.Name, err)
			}
		}
		return nil
	})
}
