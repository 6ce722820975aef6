package model

// DownloadFilename là tên file hiển thị cho user khi download
// (khác với tên artifact trên disk, vốn chứa token)
const DownloadFilename = "comment-faire-1000-euros-en-1-mois.pdf"

// GenerateResponse trả về sau khi render thành công.
// Token là credential duy nhất để download artifact.
type GenerateResponse struct {
	Token       string `json:"token"`
	DownloadURL string `json:"download_url"`
	Filename    string `json:"filename"`
}
