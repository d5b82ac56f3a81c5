package notifications

import (
	"fmt"
	"time"
)

// ResetEmailSubject is the subject line of the password reset mail.
const ResetEmailSubject = "Reset Your Password - AbiNote"

// ResetEmailBody renders the HTML body of the password reset mail. The
// link carries the token as a query parameter.
func ResetEmailBody(resetURL string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 5px;">
  <div style="text-align: center; margin-bottom: 20px;">
    <h1 style="color: #4F46E5; margin-bottom: 10px;">AbiNote</h1>
    <h2 style="color: #333; margin-bottom: 20px;">Password Reset</h2>
  </div>

  <p style="color: #555; font-size: 16px; line-height: 1.5; margin-bottom: 20px;">Hello,</p>

  <p style="color: #555; font-size: 16px; line-height: 1.5; margin-bottom: 20px;">
    We received a request to reset your password for your AbiNote account.
    Click the button below to set a new password:
  </p>

  <div style="text-align: center; margin: 30px 0;">
    <a href="%[1]s"
      style="display: inline-block; padding: 12px 24px; background-color: #4F46E5; color: white; text-decoration: none; border-radius: 5px; font-size: 16px; font-weight: bold;">
      Create New Password
    </a>
  </div>

  <p style="color: #555; font-size: 16px; line-height: 1.5; margin-bottom: 15px;">
    If the button doesn't work, copy and paste this link into your browser:
  </p>

  <p style="background-color: #f5f5f5; padding: 10px; border-radius: 4px; font-size: 14px; word-break: break-all; margin-bottom: 20px;">
    %[1]s
  </p>

  <p style="color: #555; font-size: 16px; line-height: 1.5; margin-bottom: 20px;">
    This link will expire in 24 hours for security reasons.
  </p>

  <p style="color: #555; font-size: 16px; line-height: 1.5; margin-bottom: 20px;">
    If you didn't request a password reset, please ignore this email or contact support if you're concerned.
  </p>

  <div style="margin-top: 40px; padding-top: 20px; border-top: 1px solid #e0e0e0; color: #999; font-size: 14px; text-align: center;">
    <p>&copy; %d AbiNote. All rights reserved.</p>
  </div>
</div>`, resetURL, time.Now().Year())
}
