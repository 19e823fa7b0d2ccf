package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

type Config struct {
	APIKey string `toml:"api_key"`
	From   string `toml:"from"` // 发件人，如 "리포트랙 <onboarding@resend.dev>"
}

func (c *Config) FromENV(getenv func(string) string) {
	if v := getenv("RT_RESEND_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := getenv("RT_MAIL_FROM"); v != "" {
		c.From = v
	}
}

// Sender 事务邮件发送，基于 Resend
type Sender struct {
	client *resend.Client
	from   string
}

func NewSender(cfg Config) *Sender {
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.From,
	}
}

const tempPasswordSubject = "[리포트랙] 임시 비밀번호 발급 안내"

const tempPasswordHTMLTpl = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #333; border-bottom: 2px solid #4CAF50; padding-bottom: 10px;">임시 비밀번호 발급 안내</h1>
  <p style="font-size: 16px; line-height: 1.6; color: #555;">안녕하세요, 리포트랙입니다.</p>
  <p style="font-size: 16px; line-height: 1.6; color: #555;">요청하신 임시 비밀번호는 다음과 같습니다:</p>
  <div style="background-color: #f5f5f5; padding: 20px; margin: 20px 0; border-radius: 5px; text-align: center;">
    <code style="font-size: 24px; font-weight: bold; color: #4CAF50; letter-spacing: 2px;">%s</code>
  </div>
  <p style="font-size: 16px; line-height: 1.6; color: #d32f2f; font-weight: bold;">⚠️ 보안을 위해 로그인 후 즉시 새로운 비밀번호로 변경해 주시기 바랍니다.</p>
  <p style="font-size: 14px; line-height: 1.6; color: #888; margin-top: 30px;">본인이 요청하지 않은 경우, 이 이메일을 무시하시고 고객센터로 문의해주세요.</p>
</div>`

// SendTempPassword 发送临时密码邮件
func (s *Sender) SendTempPassword(ctx context.Context, email, tempPassword string) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{email},
		Subject: tempPasswordSubject,
		Html:    fmt.Sprintf(tempPasswordHTMLTpl, tempPassword),
	})
	return err
}
