// Package mailer renders lessons into HTML emails and hands them to a transport.
//
// Rendering and delivery are separate so the transport can be swapped
// without touching the layout:
//
//   - Renderer: embeds a lesson into a fixed HTML layout and builds a
//     plain-text alternative; pure and side-effect free
//   - Sender: the transport contract, implemented by the smtp and resend
//     subpackages and by the in-memory Recorder
//   - Mailer: renders a lesson and makes one delivery attempt to a single
//     recipient
//
// # Usage
//
//	renderer, err := mailer.NewRenderer(mailer.Config{
//		SubjectPrefix: "JS Deep Dive",
//		Heading:       "JavaScript Daily",
//	})
//	if err != nil {
//		return err
//	}
//
//	sender := smtp.New(smtp.Config{
//		Host:        "smtp.gmail.com",
//		Port:        587,
//		SenderEmail: os.Getenv("EMAIL_ADDRESS"),
//		Password:    os.Getenv("EMAIL_PASSWORD"),
//	})
//
//	m := mailer.New(sender, renderer, os.Getenv("EMAIL_ADDRESS"))
//	doc, err := m.SendLesson(ctx, lesson, index, total)
//
// The rendered footer always reads "Day {index+1} of {total}".
//
// # Errors
//
//   - ErrNoRecipient: No recipient specified
//   - ErrNoSubject: No subject provided
//   - ErrNoContent: No HTML content provided
//   - ErrRenderFailed: Layout rendering failed
//   - ErrSendFailed: The transport reported a failure
package mailer
