package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends progress report emails via Amazon SES
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
	debug     bool
}

// NewEmailService creates a new email service. An empty fromEmail
// yields a disabled service that silently skips sends.
func NewEmailService(awsRegion, fromEmail, fromName string, debug bool) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false, debug: debug}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
		debug:     debug,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendProgressReport sends one profile's weekly summary
func (s *EmailService) SendProgressReport(ctx context.Context, toEmail string, report *ProgressReport) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): progress report to %s", toEmail)
		return nil
	}

	subject := fmt.Sprintf("MindGym weekly report for %s", report.ProfileName)

	var badgeLines []string
	for _, badge := range report.NewBadges {
		badgeLines = append(badgeLines, fmt.Sprintf("<li>%s %s: %s</li>", badge.Icon, badge.DisplayName, badge.Description))
	}
	badgeList := "<li>No new badges this week</li>"
	if len(badgeLines) > 0 {
		badgeList = strings.Join(badgeLines, "\n")
	}

	var categoryLines []string
	for _, c := range report.Categories {
		categoryLines = append(categoryLines, fmt.Sprintf("<li>%s: %d game(s), average accuracy %.0f%%</li>", c.DisplayName, c.GamesPlayed, c.AverageAccuracy))
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #4169e1; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>%s's week at MindGym</h1>
		</div>
		<div class="content">
			<p>Games played this week: <strong>%d</strong></p>
			<p>Current streak: <strong>%d day(s)</strong></p>
			<p>New badges:</p>
			<ul>%s</ul>
			<p>By category:</p>
			<ul>%s</ul>
		</div>
		<div class="footer">
			<p>This is an automated email from MindGym. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, report.ProfileName, report.GamesPlayed, report.CurrentStreak, badgeList, strings.Join(categoryLines, "\n"))

	textBody := fmt.Sprintf(`%s's week at MindGym

Games played this week: %d
Current streak: %d day(s)
New badges: %d

---
This is an automated email from MindGym. Please do not reply.
`, report.ProfileName, report.GamesPlayed, report.CurrentStreak, len(report.NewBadges))

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	if s.debug {
		log.Printf("[DEBUG] Sending email: from=%s, to=%s, subject=%s", fromAddress, toEmail, subject)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	if s.debug && result.MessageId != nil {
		log.Printf("[DEBUG] Message ID: %s", *result.MessageId)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
