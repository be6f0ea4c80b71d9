package ftpclient

import (
	"fmt"
	"io"
	"time"

	"github.com/jlaffaye/ftp"
)

// Uploader is the file transfer contract consumed by services.
// A connection lives for one request: Connect, Upload, Disconnect.
type Uploader interface {
	Connect() error
	Upload(remotePath string, r io.Reader) error
	Disconnect() error
}

// Client is an FTP-backed Uploader
type Client struct {
	Host     string
	Port     string
	User     string
	Password string
	Timeout  time.Duration

	conn *ftp.ServerConn
}

// NewClient creates a new FTP client
func NewClient(host, port, user, pass string) *Client {
	return &Client{
		Host:     host,
		Port:     port,
		User:     user,
		Password: pass,
		Timeout:  10 * time.Second,
	}
}

// Connect dials the FTP server and logs in
func (c *Client) Connect() error {
	conn, err := ftp.Dial(fmt.Sprintf("%s:%s", c.Host, c.Port), ftp.DialWithTimeout(c.Timeout))
	if err != nil {
		return fmt.Errorf("ftp dial failed: %w", err)
	}

	if err := conn.Login(c.User, c.Password); err != nil {
		_ = conn.Quit()
		return fmt.Errorf("ftp login failed: %w", err)
	}

	c.conn = conn
	return nil
}

// Upload stores the reader's content at the remote path
func (c *Client) Upload(remotePath string, r io.Reader) error {
	if c.conn == nil {
		return fmt.Errorf("ftp upload: not connected")
	}
	if err := c.conn.Stor(remotePath, r); err != nil {
		return fmt.Errorf("ftp store failed: %w", err)
	}
	return nil
}

// Disconnect closes the connection. Safe to call when never connected.
func (c *Client) Disconnect() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Quit()
	c.conn = nil
	return err
}
