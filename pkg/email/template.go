package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template 邮件模板
type Template struct {
	tmpl *template.Template
}

// NewTemplate 从 HTML 字符串创建模板
func NewTemplate(htmlContent string) (*Template, error) {
	tmpl, err := template.New("email").Parse(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("解析邮件模板失败: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Render 渲染模板
func (t *Template) Render(data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("渲染邮件模板失败: %w", err)
	}
	return buf.String(), nil
}

// SendWithTemplate 使用模板发送邮件
func (c *Client) SendWithTemplate(to string, subject string, tmpl *Template, data interface{}) error {
	body, err := tmpl.Render(data)
	if err != nil {
		return err
	}
	return c.SendHTML(c.config.From, to, subject, body)
}

// VerificationCodeTemplate 邮箱验证码邮件模板
const VerificationCodeTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4CAF50; color: white; padding: 20px; text-align: center; }
        .content { background-color: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
        .code { font-size: 32px; font-weight: bold; color: #4CAF50; text-align: center;
                letter-spacing: 5px; padding: 20px; background-color: #fff; border: 2px dashed #4CAF50; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>邮箱验证码</h1>
        </div>
        <div class="content">
            <p>Hi {{.Username}}，</p>
            <p>您正在验证选课系统账号邮箱，验证码为：</p>
            <div class="code">{{.Code}}</div>
            <p>该验证码将在 {{.ExpireMinutes}} 分钟后过期，请尽快使用。</p>
            <p>如果这不是您的操作，请忽略此邮件。</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复。</p>
        </div>
    </div>
</body>
</html>
`

// VerificationCodeData 验证码模板数据
type VerificationCodeData struct {
	Username      string // 用户姓名
	Code          string // 验证码
	ExpireMinutes int    // 过期时间（分钟）
}

// SendVerificationCode 发送邮箱验证码邮件
func (c *Client) SendVerificationCode(to string, username string, code string, expireMinutes int) error {
	tmpl, err := NewTemplate(VerificationCodeTemplate)
	if err != nil {
		return err
	}

	data := VerificationCodeData{
		Username:      username,
		Code:          code,
		ExpireMinutes: expireMinutes,
	}

	return c.SendWithTemplate(to, "【选课系统】邮箱验证码", tmpl, data)
}

// WelcomeTemplate 欢迎邮件模板
const WelcomeTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #2196F3; color: white; padding: 20px; text-align: center; }
        .content { background-color: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>欢迎加入选课系统</h1>
        </div>
        <div class="content">
            <p>Hi {{.Username}}，</p>
            <p>您的账号已成功创建。请使用注册邮箱收到的验证码完成邮箱验证后登录。</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复。</p>
        </div>
    </div>
</body>
</html>
`

// WelcomeData 欢迎邮件模板数据
type WelcomeData struct {
	Username string // 用户姓名
}

// SendWelcome 发送注册欢迎邮件
func (c *Client) SendWelcome(to string, username string) error {
	tmpl, err := NewTemplate(WelcomeTemplate)
	if err != nil {
		return err
	}

	return c.SendWithTemplate(to, "【选课系统】欢迎注册", tmpl, WelcomeData{Username: username})
}
