package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either the literal Subject/Text/HTML fields are used, or Template plus Data
// are rendered by the worker.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}

// Rendered returns the final subject, text and html for the job.
// render is called only when a template name is set.
func (j EmailJob) Rendered(render func(name string, data any) (string, string, string, error)) (string, string, string, error) {
	if j.Template == "" {
		return j.Subject, j.Text, j.HTML, nil
	}
	return render(j.Template, j.Data)
}
