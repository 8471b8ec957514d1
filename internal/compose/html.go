package compose

import (
	"fmt"
	"regexp"
)

// brandedContainer wraps a substituted template body in the platform's email
// chrome. Applied only to static-template sends; AI-generated templates are
// already complete HTML and go out verbatim.
const brandedContainer = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Opportunity</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
    <div style="background: linear-gradient(135deg, #0ea5e9 0%%, #06b6d4 100%%); padding: 30px 20px; text-align: center;">
      <h1 style="color: white; margin: 0; font-size: 28px; font-weight: 700;">New Opportunity</h1>
      <p style="color: rgba(255, 255, 255, 0.9); margin: 8px 0 0 0; font-size: 16px;">From %s</p>
    </div>
    <div style="padding: 40px 30px;">
      %s
    </div>
    <div style="background-color: #f1f5f9; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
      <p style="margin: 0 0 10px 0; font-size: 14px; color: #64748b;">
        This email was sent via <strong style="color: #0ea5e9;">HireAI Platform</strong>
      </p>
      <p style="margin: 0; font-size: 12px; color: #94a3b8;">
        Reply directly to this email to contact the recruiter
      </p>
    </div>
  </div>
</body>
</html>`

// BrandedHTML wraps body in the branded container, crediting senderName in
// the header.
func BrandedHTML(body, senderName string) string {
	return fmt.Sprintf(brandedContainer, senderName, body)
}

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// StripTags derives a plain-text body from HTML by removing tags.
func StripTags(s string) string {
	return htmlTag.ReplaceAllString(s, "")
}
