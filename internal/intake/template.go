package intake

import "strings"

// EmailTemplate is the recruitment email document. Submitted fields are
// injected at the elements whose id matches the field name.
const EmailTemplate = `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"><html><head><title>Getting Involved With Hourai Teahouse</title></head><body><table style="height: 100%; width: 100%;"><tr style="background-color: #2E3046; color: white;"><th style="height: 100%; width: 100%;"><h1 style="font-size: 2em;">Hourai Teahouse</h1></th></tr><tr><td><p>Hello,</p><p>Thank you for expressing interest in joining our team!</p><p>According to your submission, you have selected the following roles:</p><p id="programmer" style="padding-left: 25px;"></p><p id="modeler" style="padding-left: 25px;"></p><p id="animator" style="padding-left: 25px;"></p><p id="musician" style="padding-left: 25px;"></p><p>Please note that these roles are just generalized titles. If you feel that none of these roles adequately describe your field of interest, that is not a problem. As a community group, we are always open to anyone interested in development. When we contact you, we can fully discuss your involvement with Hourai Teahouse.</p><p>If you want to skip the wait, join us on Discord to jump right into things (Link provided below). Otherwise we will get back to you with more details through one of your provided contacts:</p><p style="padding-left: 25px;">Email: <span id="email"></span></p><p style="padding-left: 25px;">Discord: <span id="discordUser"></span></p><p style="padding-left: 25px;">Github: <span id="githubUser"></span></p></td></tr><tr><td><p>Regards,</p><p>Hourai Teahouse</p></td></tr><tr><td><p>Join us on Discord: <a href="https://discord.gg/VuZhs9V">https://discord.gg/VuZhs9V</a></tr><tr><td><p style="font-size: 12px;">NOTE: This is an automated email. Please do not reply to this email.</p></td></tr></table></body></html>`

// Render injects each field value into doc immediately after the opening tag
// carrying id="<key>". Fields without a matching anchor are skipped. Values
// are inserted verbatim, without HTML escaping. The positions are looked up
// against the current document state on every insertion, so fields do not
// corrupt each other's offsets.
func Render(doc string, fields map[string]string) string {
	for key, val := range fields {
		anchor := `id="` + key + `"`
		i := strings.Index(doc, anchor)
		if i < 0 {
			continue
		}
		end := strings.IndexByte(doc[i:], '>')
		if end < 0 {
			continue
		}
		at := i + end + 1
		doc = doc[:at] + val + doc[at:]
	}
	return doc
}
